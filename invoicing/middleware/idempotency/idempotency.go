// Package idempotency deduplicates mutating requests carrying an
// X-Idempotency-Key header. A request seen before returns its cached
// response; a request still running is rejected rather than run twice.
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

	"encore.app/invoicing/model"
)

const idempotencyHeader = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := requestBodyHash(req)
	cacheKey := model.IdempotencyKey{Resource: req.Data().Path, Key: key}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			return runAndRecord(req, next, cacheKey, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent request with same idempotency key", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		return replayCached(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// runAndRecord executes the request and caches the outcome. Failed
// requests are cleared so the caller can retry with the same key.
func runAndRecord(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := IdempotencyCache.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to record idempotency state"}}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
		return response
	}

	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for idempotency cache", "error", err)
			return response
		}
		entry.Response = payload
	}
	if err := IdempotencyCache.Set(req.Context(), cacheKey, entry); err != nil {
		rlog.Error("failed to cache idempotent response", "error", err)
	}

	return response
}

// replayCached returns the previously cached response, reconstructed into
// the endpoint's response type.
func replayCached(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		if responseType := req.Data().API.ResponseType; responseType != nil {
			value := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, value); err == nil {
				rlog.Info("returning cached response", "key", key)
				return middleware.Response{Payload: value}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	// Corrupted or empty cache entry: treat as a new request.
	return next(req)
}

func requestKey(req middleware.Request) (string, *errs.Error) {
	if headers := req.Data().Headers; headers != nil {
		if value := strings.TrimSpace(headers.Get(idempotencyHeader)); value != "" {
			return value, nil
		}
	}
	return "", &errs.Error{Code: errs.InvalidArgument, Message: idempotencyHeader + " header is required"}
}

func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body for idempotency hash", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := IdempotencyCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}
