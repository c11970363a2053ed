package packing

import (
	"slices"

	"go.trai.ch/crate/internal/core/domain"
)

// StripUnusedSpriteSources drops the source texture of packed sprites when
// no asset or scene references it anymore. The texture is removed from the
// included objects of its asset and from its extended representations.
func StripUnusedSpriteSources(
	deps *domain.DependencyData,
	sprites *domain.BuildSpriteData,
	extended *domain.BuildExtendedAssetData,
	spritePacking bool,
) domain.ReturnCode {
	if sprites == nil || len(sprites.ImporterData) == 0 || !spritePacking {
		return domain.SuccessNotRun
	}

	unused := make(map[domain.ObjectID]struct{})
	for _, data := range sprites.ImporterData {
		if data.PackedSprite {
			unused[data.SourceTexture] = struct{}{}
		}
	}
	for _, info := range deps.AssetInfo {
		for _, ref := range info.ReferencedObjects {
			delete(unused, ref)
		}
	}
	for _, info := range deps.SceneInfo {
		for _, ref := range info.ReferencedObjects {
			delete(unused, ref)
		}
	}

	for source := range unused {
		info, ok := deps.AssetInfo[source.GUID]
		if !ok || len(info.IncludedObjects) == 0 {
			continue
		}
		info.IncludedObjects = slices.Clone(info.IncludedObjects[1:])
		deps.AssetInfo[source.GUID] = info

		if extended == nil {
			continue
		}
		ext, ok := extended.ExtendedData[source.GUID]
		if !ok {
			continue
		}
		ext.Representations = slices.DeleteFunc(slices.Clone(ext.Representations), func(o domain.ObjectID) bool {
			return o == source
		})
		if len(ext.Representations) <= 1 {
			delete(extended.ExtendedData, source.GUID)
			continue
		}
		extended.ExtendedData[source.GUID] = ext
	}
	return domain.Success
}
