package docstore

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Favorjs/e-rights-backend/ererrors"
	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	try "gopkg.in/matryer/try.v1"
)

// Artifact folders within the bucket namespace.
const (
	Signatures  = "rights-submissions/signatures"
	Receipts    = "rights-submissions/receipts"
	FilledForms = "rights-submissions/filled-forms"
	Templates   = "templates"
)

// MaxUploadSize caps artifact payloads at 10MB.
const MaxUploadSize = 10 << 20

const (
	maxAttempts = 3
	backoffBase = time.Second
	backoffCap  = 10 * time.Second
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// File is one member of a multi-artifact batch upload.
type File struct {
	Name string
	Data []byte
}

type Store struct {
	session    *session.Session
	bucketName string
	namespace  string

	putFunc    func(key, contentType string, data []byte) error
	getFunc    func(key string) ([]byte, error)
	deleteFunc func(key string) error
	sleepFunc  func(time.Duration)
}

// New creates a new instance of Store using AWS environment variables.
func New() *Store {
	keyID := env.GetVar("AWS_ACCESS_KEY_ID")
	secret := env.GetVar("AWS_SECRET_ACCESS_KEY")
	bucketName := env.GetVar("AWS_S3_BUCKETNAME")
	namespace := env.GetVar("AWS_S3_NAMESPACE")
	region := env.GetVar("AWS_REGION")

	sess, _ := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(keyID, secret, ""),
		Region:      &region,
	})

	namespace = strings.TrimSuffix(namespace, "/")

	s := &Store{
		session:    sess,
		bucketName: bucketName,
		namespace:  namespace,
		sleepFunc:  time.Sleep,
	}
	s.putFunc = s.put
	s.getFunc = s.get
	s.deleteFunc = s.del
	return s
}

// Upload stores an artifact and returns its opaque identifier. The provider
// call is retried with exponential backoff; errors are translated into the
// ererrors taxonomy and must be surfaced by the caller, not retried again.
func (s *Store) Upload(data []byte, fileName, folder string) (string, error) {
	if len(data) == 0 {
		return "", ererrors.InvalidFormat.WithMsg("uploaded file is empty")
	}
	if len(data) > MaxUploadSize {
		return "", ererrors.InvalidFormat.WithMsg(
			fmt.Sprintf("uploaded file exceeds the %dMB limit", MaxUploadSize>>20))
	}

	key := s.objectKey(fileName, folder)
	contentType := inferContentType(fileName, data)

	err := try.Do(func(attempt int) (bool, error) {
		err := s.putFunc(key, contentType, data)
		if err != nil && attempt < maxAttempts {
			s.sleepFunc(backoff(attempt))
		}
		return attempt < maxAttempts, err
	})
	if err != nil {
		return "", classify(err)
	}

	return key, nil
}

// UploadBatch stores an ordered set of artifacts in one folder. If any
// upload fails, previously stored members of the batch are deleted
// (best-effort) before the failure is propagated.
func (s *Store) UploadBatch(files []File, folder string) ([]string, error) {
	ids := make([]string, 0, len(files))

	for i := range files {
		id, err := s.Upload(files[i].Data, files[i].Name, folder)
		if err != nil {
			for _, stored := range ids {
				if delErr := s.Delete(stored); delErr != nil {
					log.Warn("batch rollback delete failed",
						"artifact_id", stored, "error", delErr)
				}
			}
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Download fetches an artifact into memory.
func (s *Store) Download(artifactID string) ([]byte, error) {
	data, err := s.getFunc(artifactID)
	if err != nil {
		if isNotFoundErr(err) {
			return nil, ererrors.NotFound.WithMsg("artifact not found").WithError(err)
		}
		return nil, classify(err)
	}
	return data, nil
}

// Delete removes an artifact.
func (s *Store) Delete(artifactID string) error {
	if err := s.deleteFunc(artifactID); err != nil {
		return classify(err)
	}
	return nil
}

// Exists returns true if the artifact exists in the bucket.
func (s *Store) Exists(artifactID string) (bool, error) {
	cli := s3.New(s.session)
	_, err := cli.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(artifactID),
	})

	if err != nil {
		if isNotFoundErr(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// PresignedURL generates a short-lived download URL for an artifact.
func (s *Store) PresignedURL(artifactID, downloadName string) (string, error) {
	cli := s3.New(s.session)

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(artifactID),
	}
	if downloadName != "" {
		input.ResponseContentDisposition = aws.String(
			fmt.Sprintf(`attachment; filename="%s"`, downloadName))
	}

	req, _ := cli.GetObjectRequest(input)
	return req.Presign(15 * time.Minute)
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func (s *Store) objectKey(fileName, folder string) string {
	ext := strings.ToLower(path.Ext(fileName))
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	base = unsafeKeyChars.ReplaceAllString(base, "_")
	suffix := uuid.Must(uuid.NewV4()).String()[:8]

	key := fmt.Sprintf("%s/%s_%s%s", folder, base, suffix, ext)
	if s.namespace != "" {
		key = s.namespace + "/" + key
	}
	return key
}

func (s *Store) put(key, contentType string, data []byte) error {
	uploader := s3manager.NewUploader(s.session)

	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})

	return errors.Wrap(err, "s3 upload")
}

func (s *Store) get(key string) ([]byte, error) {
	downloader := s3manager.NewDownloader(s.session)

	w := &aws.WriteAtBuffer{}
	_, err := downloader.Download(w, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	return w.Bytes(), err
}

func (s *Store) del(key string) error {
	cli := s3.New(s.session)
	_, err := cli.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func backoff(attempt int) time.Duration {
	d := backoffBase << uint(attempt-1)
	if d > backoffCap {
		d = backoffCap
	}
	return d
}

// inferContentType resolves a content type from the file extension,
// falling back to sniffing the payload.
func inferContentType(fileName string, data []byte) string {
	if ct := ContentType(fileName); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// ContentType resolves a content type from a file name or object key,
// returning "" for unknown extensions.
func ContentType(fileName string) string {
	return contentTypes[strings.ToLower(path.Ext(fileName))]
}

// classify translates provider errors into the user-facing taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	cause := errors.Cause(err)
	if awsErr, ok := cause.(awserr.Error); ok {
		switch {
		case awsErr.Code() == "RequestTimeout" ||
			awsErr.Code() == "RequestCanceled" ||
			strings.Contains(awsErr.Code(), "Timeout"):
			return ererrors.Timeout.WithError(err)
		case awsErr.Code() == "RequestError" ||
			awsErr.Code() == "SerializationError":
			return ererrors.NetworkError.WithError(err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return ererrors.Timeout.WithError(err)
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return ererrors.NetworkError.WithError(err)
	}

	return ererrors.UploadFailed.WithError(err)
}

func isNotFoundErr(err error) bool {
	if awsErr, ok := errors.Cause(err).(awserr.Error); ok {
		switch awsErr.Code() {
		case s3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return strings.Contains(err.Error(), "Not Found")
}
