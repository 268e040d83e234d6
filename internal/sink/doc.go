// Package sink contains the destinations a submitted profile can be handed
// to: the process log, a directory of YAML records, and an S3-compatible
// bucket. Every sink implements wizard.Sink; Multi fans a submission out to
// several of them.
package sink
