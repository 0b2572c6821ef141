package config

import "fmt"

type CacheKeyStruct struct{}

// NewCacheKeyStruct creates a new CacheKeyStruct.
func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PublicListKey returns the cache key for the public listing of a collection.
func (r *CacheKeyStruct) PublicListKey(collection string) string {
	return fmt.Sprintf("cms:list:%s", collection)
}

var CacheKey = NewCacheKeyStruct()

// PublicListGenKey returns the key of the generation counter bumped on every
// invalidation of a collection listing.
func (r *CacheKeyStruct) PublicListGenKey(collection string) string {
	return fmt.Sprintf("cms:list:%s:gen", collection)
}
