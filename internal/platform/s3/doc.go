// Package s3 provides a small client for S3-compatible object storage.
//
// It covers what the submission archive needs: making sure a bucket exists
// and uploading objects. Errors from S3-compatible services are classified
// through smithy API error codes so callers can decide whether to retry.
package s3
