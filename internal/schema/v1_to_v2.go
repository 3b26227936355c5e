package schema

import (
	"net/url"

	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

// migrateV1ToV2 turns the legacy recentDocuments list into archiveItems.
// It is a no-op when archiveItems already exists.
func migrateV1ToV2(raw map[string]any) (map[string]any, error) {
	out := shallowCopy(raw)
	if _, ok := raw[KeyArchiveItems]; ok {
		return out, nil
	}

	legacy, _ := raw[KeyRecentDocuments].([]any)
	items := make([]any, 0, len(legacy))
	for _, entry := range legacy {
		doc, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, recentDocumentToArchiveItem(doc))
	}

	out[KeyArchiveItems] = items
	return out, nil
}

func recentDocumentToArchiveItem(doc map[string]any) map[string]any {
	source, _ := doc["source"].(string)
	ts := doc["timestamp"]

	item := map[string]any{
		"id":           legacyID(doc),
		"type":         string(MapSourceToType(source)),
		"title":        stringOr(doc["title"], ""),
		"sourceLabel":  ExtractSourceLabel(doc),
		"createdAt":    ts,
		"lastOpenedAt": ts,
	}

	for _, key := range []string{"url", "cachedDocument", "fileHash", "lastPosition", "progress"} {
		if v, ok := doc[key]; ok && v != nil {
			item[key] = v
		}
	}

	return item
}

// MapSourceToType maps a legacy source string onto an archive item type.
// Unknown sources are treated as web pages.
func MapSourceToType(source string) models.ArchiveItemType {
	switch source {
	case "web", "selection":
		return models.ArchiveItemWeb
	case "pdf":
		return models.ArchiveItemPDF
	case "docx":
		return models.ArchiveItemDOCX
	case "epub":
		return models.ArchiveItemEPUB
	case "mobi":
		return models.ArchiveItemMOBI
	case "paste":
		return models.ArchiveItemPaste
	default:
		return models.ArchiveItemWeb
	}
}

// ExtractSourceLabel picks the human label for a legacy record: the URL's
// hostname, else the cached document's file name, else the raw source,
// else the raw URL text when it could not be parsed.
func ExtractSourceLabel(doc map[string]any) string {
	rawURL, _ := doc["url"].(string)
	if rawURL != "" {
		if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
			return u.Hostname()
		}
	}

	if cached, ok := doc["cachedDocument"].(map[string]any); ok {
		if name, _ := cached["fileName"].(string); name != "" {
			return name
		}
	}

	if source, _ := doc["source"].(string); source != "" {
		return source
	}

	return rawURL
}

func legacyID(doc map[string]any) string {
	if id, _ := doc["id"].(string); id != "" {
		return id
	}

	return utils.NewUUIDGenerator().Generate()
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}
