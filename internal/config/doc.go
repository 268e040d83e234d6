// Package config loads the stepform configuration file.
//
// The file is optional: without one, submissions are only logged. It selects
// the submission sinks (log, file, s3), the log level and format, the submit
// timeout and an optional Prometheus textfile path. Secrets are never read
// from the file; S3 credentials come from STEPFORM_S3_ACCESS_KEY and
// STEPFORM_S3_SECRET_KEY.
package config
