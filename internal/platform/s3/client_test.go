package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// testClient creates a Client backed by a test HTTP server.
// The handler receives real S3 XML-protocol requests.
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)

	client := s3.New(s3.Options{
		Region:           "eu-central-1",
		BaseEndpoint:     aws.String(server.URL),
		UsePathStyle:     true,
		RetryMaxAttempts: 1,
		Credentials:      credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		HTTPClient: &http.Client{
			Transport: &http.Transport{},
		},
	})

	return &Client{s3: client, region: "eu-central-1"}, server
}

// xmlResponse is a helper to write S3-style XML responses.
func xmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func errorBody(code string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>%s</Code>
  <Message>%s</Message>
</Error>`, code, code)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	client, err := NewClient(context.Background(), Options{
		Endpoint:  "https://s3.example.com",
		Region:    "eu-central-1",
		AccessKey: "access",
		SecretKey: "secret",
		PathStyle: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Region() != "eu-central-1" {
		t.Errorf("Region() = %q, want eu-central-1", client.Region())
	}
}

func TestEnsureBucket_Exists(t *testing.T) {
	t.Parallel()

	var methods []string
	var mu sync.Mutex
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()
		w.WriteHeader(200)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	if err := client.EnsureBucket(context.Background(), "profiles"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(methods) != 1 || methods[0] != http.MethodHead {
		t.Errorf("expected a single HEAD request, got %v", methods)
	}
}

func TestEnsureBucket_Creates(t *testing.T) {
	t.Parallel()

	created := false
	var mu sync.Mutex
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(404)
		case http.MethodPut:
			mu.Lock()
			created = true
			mu.Unlock()
			xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?><CreateBucketResult/>`)
		default:
			w.WriteHeader(405)
		}
	})

	client, server := testClient(t, handler)
	defer server.Close()

	if err := client.EnsureBucket(context.Background(), "profiles"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !created {
		t.Error("expected bucket to be created")
	}
}

func TestEnsureBucket_AlreadyOwnedByYou(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(404)
			return
		}
		xmlResponse(w, 409, errorBody("BucketAlreadyOwnedByYou"))
	})

	client, server := testClient(t, handler)
	defer server.Close()

	if err := client.EnsureBucket(context.Background(), "profiles"); err != nil {
		t.Fatalf("expected nil error for already owned bucket, got: %v", err)
	}
}

func TestEnsureBucket_CreateError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(404)
			return
		}
		xmlResponse(w, 403, errorBody("AccessDenied"))
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.EnsureBucket(context.Background(), "profiles")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to create bucket profiles") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestPutObject_Success(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	var capturedPath, capturedType string
	var mu sync.Mutex

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			mu.Lock()
			body, _ := io.ReadAll(r.Body)
			capturedBody = body
			capturedPath = r.URL.Path
			capturedType = r.Header.Get("Content-Type")
			mu.Unlock()
			w.WriteHeader(200)
			return
		}
		w.WriteHeader(404)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	data := []byte("firstName: Ada\n")
	err := client.PutObject(context.Background(), "profiles", "submissions/a.yaml", data, "application/yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if string(capturedBody) != string(data) {
		t.Errorf("expected body %q, got %q", data, capturedBody)
	}
	if capturedPath != "/profiles/submissions/a.yaml" {
		t.Errorf("unexpected path %q", capturedPath)
	}
	if capturedType != "application/yaml" {
		t.Errorf("unexpected content type %q", capturedType)
	}
}

func TestPutObject_Error(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 500, errorBody("InternalError"))
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.PutObject(context.Background(), "profiles", "k", []byte("data"), "")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to put object k in bucket profiles") {
		t.Errorf("unexpected error message: %v", err)
	}
	if IsPermanent(err) {
		t.Error("server errors should be retryable")
	}
}

func TestPutObject_AccessDeniedIsPermanent(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 403, errorBody("AccessDenied"))
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.PutObject(context.Background(), "profiles", "k", []byte("data"), "")
	if !IsPermanent(err) {
		t.Errorf("expected AccessDenied to be permanent, got %v", err)
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		alreadyOwned  bool
		notFound      bool
		wantPermanent bool
	}{
		{"nil", nil, false, false, false},
		{"plain error", errors.New("boom"), false, false, false},
		{"typed already owned", &s3types.BucketAlreadyOwnedByYou{}, true, false, true},
		{"typed no such bucket", fmt.Errorf("wrapped: %w", &s3types.NoSuchBucket{}), false, true, true},
		{"typed not found", &s3types.NotFound{}, false, true, true},
		{"generic 404 code", &smithy.GenericAPIError{Code: "404"}, false, true, false},
		{"generic already owned", &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"}, true, false, false},
		{"generic denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false, false, true},
		{"generic server fault", &smithy.GenericAPIError{Code: "SlowDown", Fault: smithy.FaultServer}, false, false, false},
		{"generic client fault", &smithy.GenericAPIError{Code: "BadDigest", Fault: smithy.FaultClient}, false, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isBucketAlreadyOwnedByYou(tt.err); got != tt.alreadyOwned {
				t.Errorf("isBucketAlreadyOwnedByYou() = %v, want %v", got, tt.alreadyOwned)
			}
			if got := isNotFoundError(tt.err); got != tt.notFound {
				t.Errorf("isNotFoundError() = %v, want %v", got, tt.notFound)
			}
			if got := IsPermanent(tt.err); got != tt.wantPermanent {
				t.Errorf("IsPermanent() = %v, want %v", got, tt.wantPermanent)
			}
		})
	}
}
