package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const (
	contentTypeJSONLines = "application/x-ndjson"
	objectExtension      = ".jsonl"
)

// HistorySource supplies ledger history and the current calendar day.
type HistorySource interface {
	History(ctx context.Context, userID engagement.UserID, limit int) ([]engagement.LedgerEntry, error)
	Today() engagement.CalendarDate
}

// ObjectPutter is the subset of *s3.Client used to upload exports.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result describes one uploaded export.
type Result struct {
	Bucket  string
	Key     string
	Entries int
}

// Exporter writes per-user ledger history to an S3-compatible bucket as JSON Lines.
type Exporter struct {
	source HistorySource
	putter ObjectPutter
	bucket string
	prefix string
	logger *zap.Logger
}

// NewS3Client builds an S3 client for cfg. A custom endpoint (R2, MinIO) switches to
// path-style addressing.
func NewS3Client(ctx context.Context, cfg config.ArchiveConfig) (*s3.Client, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load archive config: %w", err)
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	}), nil
}

// NewExporter wires an Exporter.
func NewExporter(source HistorySource, putter ObjectPutter, bucket string, prefix string, logger *zap.Logger) (*Exporter, error) {
	if source == nil {
		return nil, errors.New("archive: history source is required")
	}
	if putter == nil {
		return nil, errors.New("archive: object putter is required")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("archive: bucket is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		source: source,
		putter: putter,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger.Named("archive"),
	}, nil
}

// ExportUser uploads up to limit most recent ledger entries of userID.
func (exporter *Exporter) ExportUser(ctx context.Context, userID engagement.UserID, limit int) (Result, error) {
	entries, err := exporter.source.History(ctx, userID, limit)
	if err != nil {
		return Result{}, fmt.Errorf("archive: history: %w", err)
	}
	body, err := encodeEntries(entries)
	if err != nil {
		return Result{}, fmt.Errorf("archive: encode: %w", err)
	}
	key := exporter.objectKey(userID, exporter.source.Today())
	_, err = exporter.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(exporter.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeJSONLines),
	})
	if err != nil {
		return Result{}, fmt.Errorf("archive: upload %s: %w", key, err)
	}
	exporter.logger.Info("ledger exported", zap.String("user_id", userID.String()), zap.String("key", key), zap.Int("entries", len(entries)))
	return Result{Bucket: exporter.bucket, Key: key, Entries: len(entries)}, nil
}

func (exporter *Exporter) objectKey(userID engagement.UserID, day engagement.CalendarDate) string {
	return path.Join(exporter.prefix, userID.String(), day.String()+objectExtension)
}

type exportLine struct {
	EntryID        string `json:"entry_id"`
	UserID         string `json:"user_id"`
	ActionKind     string `json:"action_kind"`
	Delta          int64  `json:"delta"`
	TargetID       string `json:"target_id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	CreatedUnixUTC int64  `json:"created_unix_utc"`
}

func encodeEntries(entries []engagement.LedgerEntry) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	for _, entry := range entries {
		line := exportLine{
			EntryID:        entry.EntryID(),
			UserID:         entry.UserID().String(),
			ActionKind:     entry.ActionKind().String(),
			Delta:          entry.Delta().Int64(),
			CreatedUnixUTC: entry.CreatedUnixUTC(),
		}
		if target, ok := entry.TargetID(); ok {
			line.TargetID = target.String()
		}
		if key, ok := entry.IdempotencyKey(); ok {
			line.IdempotencyKey = key
		}
		if err := encoder.Encode(line); err != nil {
			return nil, err
		}
	}
	return buffer.Bytes(), nil
}
