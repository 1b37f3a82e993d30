package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"coopart/internal/apperr"
	"coopart/internal/model"
)

// ErrEmptyPayload is returned when Put is called with no bytes.
var ErrEmptyPayload = errors.New("empty payload")

// contentPrefix is the object key prefix for content-addressed blobs.
const contentPrefix = "ipfs/"

// ContentID identifies a blob by its content (a CIDv1 string).
type ContentID string

// Ref returns the ipfs:// reference for the id.
func (c ContentID) Ref() string {
	return model.ContentRef(string(c))
}

func (c ContentID) String() string { return string(c) }

// ContentStore is a content-addressed blob store.
type ContentStore interface {
	// Put stores data and returns its content id. Identical bytes always
	// yield the same id.
	Put(ctx context.Context, data []byte) (ContentID, error)
	// Get returns the blob stored under id.
	Get(ctx context.Context, id ContentID) ([]byte, error)
	// Link returns a time-limited download URL for id.
	Link(ctx context.Context, id ContentID, expiry time.Duration) (string, error)
}

// ComputeID derives the CIDv1 (raw codec, sha2-256) of data.
func ComputeID(data []byte) (ContentID, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %w", apperr.ErrValidation, ErrEmptyPayload)
	}
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash payload: %w", err)
	}
	return ContentID(cid.NewCidV1(cid.Raw, mh).String()), nil
}

// ParseRef validates an ipfs:// reference (or a bare id) and returns its id.
func ParseRef(ref string) (ContentID, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(ref), model.IPFSScheme)
	if raw == "" {
		return "", fmt.Errorf("%w: empty content reference", apperr.ErrValidation)
	}
	c, err := cid.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid content reference %q: %v", apperr.ErrValidation, ref, err)
	}
	return ContentID(c.String()), nil
}

type casStore struct {
	objects Storage
}

// NewContentStore layers content addressing over an object store.
func NewContentStore(objects Storage) ContentStore {
	return &casStore{objects: objects}
}

func (s *casStore) Put(ctx context.Context, data []byte) (ContentID, error) {
	id, err := ComputeID(data)
	if err != nil {
		return "", err
	}
	_, err = s.objects.Put(ctx, contentPrefix+string(id), bytes.NewReader(data), PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", apperr.ErrStorageUnavailable, id, err)
	}
	return id, nil
}

func (s *casStore) Get(ctx context.Context, id ContentID) ([]byte, error) {
	rc, _, err := s.objects.Get(ctx, contentPrefix+string(id))
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
		}
		return nil, fmt.Errorf("%w: get %s: %v", apperr.ErrStorageUnavailable, id, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrStorageUnavailable, id, err)
	}
	return data, nil
}

func (s *casStore) Link(ctx context.Context, id ContentID, expiry time.Duration) (string, error) {
	u, err := s.objects.PresignGet(ctx, contentPrefix+string(id), expiry)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return "", fmt.Errorf("%w: %s", ErrObjectNotFound, id)
		}
		return "", fmt.Errorf("%w: link %s: %v", apperr.ErrStorageUnavailable, id, err)
	}
	return u, nil
}
