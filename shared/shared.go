package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"shareit/shared/cache"
	"shareit/shared/constant"
	"shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map.
// Pointer fields are dereferenced so a set-to-false bool is still written.
func TransformFields(data interface{}, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// UserIDFromContext returns the sharer id placed in the context by the identity middleware.
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	return userID
}

// ParseID reads a positive numeric identifier from a path segment.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestf("Invalid id: %s", value) // nolint:wrapcheck
	}

	return id, nil
}

// Actor renders a user id for the created_by/modified_by columns.
func Actor(userID int64) string {
	if userID == 0 {
		return constant.ContextGuest
	}

	return strconv.FormatInt(userID, 10)
}

// ParseDateTime accepts the local layout used by clients as well as RFC3339.
func ParseDateTime(value string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.DateTimeLayout, value)
	if err == nil {
		return parsed, nil
	}

	parsed, err = time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q: %w", value, err)
	}

	return parsed, nil
}

func FormatDateTime(value time.Time) string {
	return timezone.Format(value, constant.DateTimeLayout)
}

func BuildCacheKey(prefix string, parts ...any) string {
	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		keys = append(keys, fmt.Sprintf("%v", part))
	}

	return strings.Join(keys, ":")
}

// BuildCacheKeyWithQuery hashes the query shape so keys stay bounded in length.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup, parts ...any) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(map[string]any{
		"params": params,
		"where":  where,
		"args":   args,
	})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, append(parts, hex.EncodeToString(sum[:]))...)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
