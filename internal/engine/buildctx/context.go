// Package buildctx stores the objects a pipeline stage consumes and produces,
// keyed by the capability tag they are registered under.
package buildctx

import (
	"sync"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// capabilities declares the contract a value must satisfy for each tag.
var capabilities = map[domain.ContextTag]func(any) bool{
	domain.TagBuildParameters:    is[*domain.BuildParameters],
	domain.TagBuildContent:       is[domain.BuildContent],
	domain.TagBundleContent:      is[domain.BundleContent],
	domain.TagCustomAssets:       is[domain.CustomAssets],
	domain.TagDependencyData:     is[*domain.DependencyData],
	domain.TagWriteData:          is[domain.WriteData],
	domain.TagBundleWriteData:    is[domain.BundleWriteData],
	domain.TagSpriteData:         is[*domain.BuildSpriteData],
	domain.TagExtendedAssetData:  is[*domain.BuildExtendedAssetData],
	domain.TagDependencyCallback: is[domain.DependencyHook],
	domain.TagPackingCallback:    is[domain.PackingHook],
	domain.TagBuildCache:         is[ports.BuildCache],
	domain.TagBuildLogger:        is[ports.BuildLogger],
	domain.TagProgressTracker:    is[ports.ProgressTracker],
	domain.TagIdentifiers:        is[ports.Identifiers],
	domain.TagAssetStore:         is[ports.AssetStore],
	domain.TagAssetDatabase:      is[ports.AssetDatabase],
}

func is[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// Context maps capability tags to values.
type Context struct {
	mu     sync.RWMutex
	values map[domain.ContextTag]any
}

// New creates a Context holding objs.
func New(objs ...domain.ContextObject) (*Context, error) {
	c := &Context{values: make(map[domain.ContextTag]any)}
	if err := c.Register(objs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Set stores v under tag, replacing any previous value.
func (c *Context) Set(tag domain.ContextTag, v any) error {
	check, ok := capabilities[tag]
	if !ok {
		return zerr.With(domain.ErrUnknownTag, "tag", string(tag))
	}
	if v == nil || !check(v) {
		return zerr.With(domain.ErrCapabilityMismatch, "tag", string(tag))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[tag] = v
	return nil
}

// Register stores every object under each tag it declares.
func (c *Context) Register(objs ...domain.ContextObject) error {
	for _, obj := range objs {
		for _, tag := range obj.ContextTags() {
			if err := c.Set(tag, obj); err != nil {
				return err
			}
		}
	}
	return nil
}

// Contains reports whether a value is stored under tag.
func (c *Context) Contains(tag domain.ContextTag) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[tag]
	return ok
}

// Remove drops the value stored under tag.
func (c *Context) Remove(tag domain.ContextTag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, tag)
}

func (c *Context) lookup(tag domain.ContextTag) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[tag]
	return v, ok
}

// Get returns the value stored under tag as T.
func Get[T any](c *Context, tag domain.ContextTag) (T, error) {
	var zero T
	v, ok := c.lookup(tag)
	if !ok {
		return zero, zerr.With(domain.ErrContextMissing, "tag", string(tag))
	}
	t, ok := v.(T)
	if !ok {
		return zero, zerr.With(domain.ErrCapabilityMismatch, "tag", string(tag))
	}
	return t, nil
}

// TryGet returns the value stored under tag as T, or false.
func TryGet[T any](c *Context, tag domain.ContextTag) (T, bool) {
	t, err := Get[T](c, tag)
	return t, err == nil
}
