// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable max attempts,
// initial delay, and maximum delay. Submission sinks use it for uploads to
// remote storage. Errors wrapped with [Permanent] stop the loop at once.
package retry
