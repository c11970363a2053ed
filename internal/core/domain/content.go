package domain

import "go.trai.ch/zerr"

// AssetKind classifies an identity for bundle membership.
type AssetKind uint8

const (
	// KindInvalid is an identity that cannot be built.
	KindInvalid AssetKind = iota
	// KindAsset is a regular asset.
	KindAsset
	// KindScene is a scene.
	KindScene
)

// String returns the string representation of the AssetKind.
func (k AssetKind) String() string {
	switch k {
	case KindAsset:
		return "asset"
	case KindScene:
		return "scene"
	default:
		return "invalid"
	}
}

// AssetClassifier answers classification questions about identities.
type AssetClassifier interface {
	Kind(guid GUID) AssetKind
	Path(guid GUID) string
}

// BundleMember is one identity requested in a bundle, with an optional address.
type BundleMember struct {
	GUID    GUID
	Address string
}

// BundleBuild is a user supplied bundle definition.
type BundleBuild struct {
	Name    string
	Members []BundleMember
}

// Bundle is a validated bundle of the layout.
type Bundle struct {
	Name    string
	Members []GUID
}

// BuildContent exposes the identities to build.
type BuildContent interface {
	AssetList() []GUID
	SceneList() []GUID
}

// BundleContent exposes a bundle layout on top of BuildContent.
type BundleContent interface {
	BuildContent
	BundleLayout() []Bundle
	KindOf(guid GUID) AssetKind
	AddressOf(guid GUID) string
}

// CustomAssets lists identities whose dependency data a callback supplies.
type CustomAssets interface {
	CustomAssetList() []GUID
}

// ResolvableAssets returns the assets whose dependencies come from the asset
// store: every asset not listed by custom. A nil custom keeps them all.
func ResolvableAssets(assets []GUID, custom CustomAssets) []GUID {
	skip := make(map[GUID]struct{})
	if custom != nil {
		for _, g := range custom.CustomAssetList() {
			skip[g] = struct{}{}
		}
	}
	out := make([]GUID, 0, len(assets))
	for _, g := range assets {
		if _, ok := skip[g]; !ok {
			out = append(out, g)
		}
	}
	return out
}

// BundleBuildContent is the validated bundle layout of a build.
// Bundles keep their declaration order.
type BundleBuildContent struct {
	Assets       []GUID
	Scenes       []GUID
	CustomAssets []GUID
	Addresses    map[GUID]string
	Layout       []Bundle
	kinds        map[GUID]AssetKind
}

// NewBundleBuildContent validates bundle definitions.
// Identities listed in custom are accepted in asset bundles even though the
// classifier does not know them; their dependency data is supplied by a
// callback stage. Every member must be a valid asset or scene, a bundle may
// not mix assets with scenes, and an identity may only belong to one bundle.
func NewBundleBuildContent(builds []BundleBuild, custom []GUID, classifier AssetClassifier) (*BundleBuildContent, error) {
	c := &BundleBuildContent{
		CustomAssets: append([]GUID(nil), custom...),
		Addresses:    make(map[GUID]string),
		kinds:        make(map[GUID]AssetKind),
	}
	customSet := make(map[GUID]struct{}, len(custom))
	for _, g := range custom {
		customSet[g] = struct{}{}
	}
	owner := make(map[GUID]string)
	names := make(map[string]struct{}, len(builds))

	for _, b := range builds {
		if _, dup := names[b.Name]; dup {
			return nil, zerr.With(ErrDuplicateBundle, "bundle", b.Name)
		}
		names[b.Name] = struct{}{}

		bundle := Bundle{Name: b.Name, Members: make([]GUID, 0, len(b.Members))}
		var hasAssets, hasScenes bool
		for _, m := range b.Members {
			if prev, taken := owner[m.GUID]; taken {
				err := zerr.With(ErrAssetInMultipleBundles, "guid", m.GUID.String())
				err = zerr.With(err, "bundle", b.Name)
				return nil, zerr.With(err, "other_bundle", prev)
			}
			owner[m.GUID] = b.Name

			kind := classifier.Kind(m.GUID)
			if _, ok := customSet[m.GUID]; ok {
				kind = KindAsset
			}
			switch kind {
			case KindAsset:
				hasAssets = true
				c.Assets = append(c.Assets, m.GUID)
			case KindScene:
				hasScenes = true
				c.Scenes = append(c.Scenes, m.GUID)
			default:
				err := zerr.With(ErrInvalidAsset, "guid", m.GUID.String())
				return nil, zerr.With(err, "bundle", b.Name)
			}
			c.kinds[m.GUID] = kind

			address := m.Address
			if address == "" {
				address = classifier.Path(m.GUID)
			}
			c.Addresses[m.GUID] = address
			bundle.Members = append(bundle.Members, m.GUID)
		}
		if hasAssets && hasScenes {
			return nil, zerr.With(ErrMixedBundle, "bundle", b.Name)
		}
		c.Layout = append(c.Layout, bundle)
	}

	return c, nil
}

// AssetList returns the assets to build, custom assets included.
func (c *BundleBuildContent) AssetList() []GUID { return c.Assets }

// SceneList returns the scenes to build.
func (c *BundleBuildContent) SceneList() []GUID { return c.Scenes }

// BundleLayout returns the bundles in declaration order.
func (c *BundleBuildContent) BundleLayout() []Bundle { return c.Layout }

// KindOf returns the validated kind of a member, KindInvalid for non-members.
func (c *BundleBuildContent) KindOf(guid GUID) AssetKind { return c.kinds[guid] }

// AddressOf returns the load address of a member.
func (c *BundleBuildContent) AddressOf(guid GUID) string { return c.Addresses[guid] }

// CustomAssetList implements CustomAssets.
func (c *BundleBuildContent) CustomAssetList() []GUID { return c.CustomAssets }
