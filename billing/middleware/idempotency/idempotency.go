// Package idempotency replays the response of a bill or payment POST when a
// client retries it with the same X-Idempotency-Key.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"github.com/jewelcraft/jewel-billing/billing/model"
)

const HeaderName = "X-Idempotency-Key"

// Middleware guards endpoints tagged idempotency: create bill, process
// payment and refund payment. A retry of a completed request gets the
// cached response; a retry while the first attempt is still running is
// rejected; failed attempts are forgotten so the client can retry.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)
	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Entries.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if !errors.Is(cacheErr, cache.Miss) {
			rlog.Error("idempotency lookup failed", "key", key, "error", cacheErr)
			return middleware.Response{
				Err: &errs.Error{Code: errs.Unavailable, Message: "failed to check idempotency key"},
			}
		}

		if err := markAsProcessing(req.Context(), cacheKey); err != nil {
			return middleware.Response{Err: err}
		}

		response := next(req)
		if response.Err != nil {
			forget(req.Context(), cacheKey)
		} else {
			markAsCompleted(req.Context(), cacheKey, bodyHash, response)
		}
		return response
	}

	return handleExistingEntry(req, next, entry, bodyHash, key)
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(HeaderName))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: HeaderName + " header is required"}
	}
	return key, nil
}

func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		return handleProcessingEntry(key)
	case model.IdempotencyCompleted:
		return handleCompletedEntry(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func handleProcessingEntry(key string) middleware.Response {
	rlog.Info("concurrent request detected", "key", key)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if payload, ok := decodeCachedResponse(req, entry); ok {
		rlog.Info("returning cached response", "key", key)
		return middleware.Response{Payload: payload}
	}
	return next(req)
}

// decodeCachedResponse rebuilds the endpoint's response type from the
// cached JSON.
func decodeCachedResponse(req middleware.Request, entry model.IdempotencyCacheEntry) (any, bool) {
	if len(entry.Response) == 0 {
		return nil, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return nil, false
	}

	responseType := api.ResponseType
	if responseType.Kind() == reflect.Pointer {
		responseType = responseType.Elem()
	}
	value := reflect.New(responseType).Interface()
	if err := json.Unmarshal(entry.Response, value); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return nil, false
	}
	return value, true
}

func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := Entries.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    model.IdempotencyProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Unavailable, Message: "failed to reserve idempotency key"}
	}
	return nil
}

func forget(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := Entries.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		body, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for caching", "error", err)
			forget(ctx, cacheKey)
			return
		}
		entry.Response = body
	}

	if err := Entries.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache response", "error", err)
	}
}

// hashing returns the hex SHA-256 of body, or "" for an empty body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
