package merge

import (
	"github.com/MKhiriev/readsync/internal/progress"
	"github.com/MKhiriev/readsync/models"
)

// mergePresets unions presets by name; a name on both sides takes the value
// of the more recent document.
func mergePresets(local, remote map[string]models.PartialSettings, remoteNewer bool) map[string]models.PartialSettings {
	if local == nil && remote == nil {
		return nil
	}

	out := make(map[string]models.PartialSettings, len(local)+len(remote))
	for name, preset := range local {
		out[name] = preset
	}
	for name, preset := range remote {
		if _, ok := out[name]; ok && !remoteNewer {
			continue
		}
		out[name] = preset
	}
	return out
}

// mergeThemes unions themes by name. Local order is kept, remote-only themes
// are appended.
func mergeThemes(local, remote []models.Theme, remoteNewer bool) []models.Theme {
	if local == nil && remote == nil {
		return nil
	}

	remoteIndex := make(map[string]models.Theme, len(remote))
	for _, th := range remote {
		remoteIndex[th.Name] = th
	}

	out := make([]models.Theme, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))
	for _, th := range local {
		seen[th.Name] = struct{}{}
		if r, ok := remoteIndex[th.Name]; ok && remoteNewer {
			out = append(out, r)
			continue
		}
		out = append(out, th)
	}
	for _, th := range remote {
		if _, ok := seen[th.Name]; ok {
			continue
		}
		seen[th.Name] = struct{}{}
		out = append(out, th)
	}
	return out
}

// mergeArchiveItems unions items by id. Local order is kept, remote-only
// items are appended.
func mergeArchiveItems(local, remote []models.ArchiveItem) []models.ArchiveItem {
	if local == nil && remote == nil {
		return nil
	}

	remoteIndex := make(map[string]models.ArchiveItem, len(remote))
	for _, it := range remote {
		remoteIndex[it.ID] = it
	}

	out := make([]models.ArchiveItem, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))
	for _, it := range local {
		seen[it.ID] = struct{}{}
		if r, ok := remoteIndex[it.ID]; ok {
			out = append(out, MergeArchiveItemPair(it, r))
			continue
		}
		out = append(out, it)
	}
	for _, it := range remote {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// MergeArchiveItemPair merges two versions of the same archive item.
//
// Metadata comes from the item with the greater LastOpenedAt (ties favour
// local). LastPosition and Progress are the furthest of the two regardless
// of which side supplied the metadata. FileHash, URL and PasteContent
// missing on the winner are backfilled from the other side, and
// CollectionIDs is the union of both.
func MergeArchiveItemPair(local, remote models.ArchiveItem) models.ArchiveItem {
	winner, other := local, remote
	if remote.LastOpenedAt > local.LastOpenedAt {
		winner, other = remote, local
	}

	out := winner
	out.LastPosition = progress.FurtherPosition(local.LastPosition, remote.LastPosition)
	out.Progress = progress.FurtherProgress(local.Progress, remote.Progress)

	if out.FileHash == "" {
		out.FileHash = other.FileHash
	}
	if out.URL == "" {
		out.URL = other.URL
	}
	if out.PasteContent == "" {
		out.PasteContent = other.PasteContent
	}

	out.CollectionIDs = unionStrings(local.CollectionIDs, remote.CollectionIDs)

	return out
}

// mergePositions unions positions by document key; a key on both sides
// takes the furthest position.
func mergePositions(local, remote map[string]models.ReadingPosition) map[string]models.ReadingPosition {
	if local == nil && remote == nil {
		return nil
	}

	out := make(map[string]models.ReadingPosition, len(local)+len(remote))
	for key, p := range local {
		out[key] = p
	}
	for key, r := range remote {
		l, ok := out[key]
		if !ok {
			out[key] = r
			continue
		}
		out[key] = *progress.FurtherPosition(&l, &r)
	}
	return out
}

func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}

	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range b {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
