package store

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/smoke-stack/models"
)

const (
	strainsTable      = "strains"
	localStorageTable = "local_storage"

	columnInternalID = "_id"
	columnAliasID    = "id"
	columnCreatedAt  = "created_at"
)

var strainColumns = []string{
	columnInternalID, columnAliasID, "name", "type",
	"source", "image", "setting", "format", "stoner", "impressions", "other",
	columnCreatedAt, "updated_at",
}

// buildListStrainsQuery selects every record, newest first. Ties on
// created_at are ordered by internal id so the listing is stable.
func buildListStrainsQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return b.Select(strainColumns...).
		From(strainsTable).
		OrderBy(columnCreatedAt+" DESC", columnInternalID+" DESC").
		ToSql()
}

// buildGetStrainQuery selects the record whose column equals value.
func buildGetStrainQuery(b squirrel.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(strainColumns...).
		From(strainsTable).
		Where(squirrel.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildIdentifierTakenQuery counts records whose internal id or alias equals id.
func buildIdentifierTakenQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(strainsTable).
		Where(squirrel.Or{
			squirrel.Eq{columnInternalID: id},
			squirrel.Eq{columnAliasID: id},
		}).
		ToSql()
}

func buildInsertStrainQuery(b squirrel.StatementBuilderType, s models.Strain) (string, []any, error) {
	return b.Insert(strainsTable).
		Columns(strainColumns...).
		Values(
			s.InternalID, s.AliasID, s.Name, s.Type,
			s.Source, s.Image, s.Setting, s.Format, s.Stoner, s.Impressions, s.Other,
			s.CreatedAt, s.UpdatedAt,
		).
		ToSql()
}

// buildUpdateStrainQuery overwrites every mutable field of the record with
// the given internal id. Identifiers and created_at are never touched.
func buildUpdateStrainQuery(b squirrel.StatementBuilderType, internalID string, s models.Strain) (string, []any, error) {
	return b.Update(strainsTable).
		SetMap(map[string]any{
			"name":        s.Name,
			"type":        s.Type,
			"source":      s.Source,
			"image":       s.Image,
			"setting":     s.Setting,
			"format":      s.Format,
			"stoner":      s.Stoner,
			"impressions": s.Impressions,
			"other":       s.Other,
			"updated_at":  s.UpdatedAt,
		}).
		Where(squirrel.Eq{columnInternalID: internalID}).
		ToSql()
}

func buildDeleteStrainQuery(b squirrel.StatementBuilderType, internalID string) (string, []any, error) {
	return b.Delete(strainsTable).
		Where(squirrel.Eq{columnInternalID: internalID}).
		ToSql()
}

func buildCountStrainsQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(strainsTable).ToSql()
}

func buildGetCacheValueQuery(b squirrel.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(localStorageTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

// buildPutCacheValueQuery upserts key. ON CONFLICT ... DO UPDATE is understood
// by both SQLite and PostgreSQL.
func buildPutCacheValueQuery(b squirrel.StatementBuilderType, key, value string, now time.Time) (string, []any, error) {
	return b.Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCacheValueQuery(b squirrel.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(localStorageTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}
