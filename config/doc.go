// SPDX-License-Identifier: MIT

// Package config loads the magnitude command's settings.
//
// Sources are layered, later ones winning:
//
//  1. Defaults from DefaultConfig
//  2. An optional YAML file
//  3. Environment variables prefixed MAGNITUDE_
//
// Environment keys map to dotted paths by dropping the prefix, lowering the
// case and turning the first underscore into a dot:
//
//	MAGNITUDE_ENGINE_SCALE          -> engine.scale
//	MAGNITUDE_ENGINE_CACHE_CAPACITY -> engine.cache_capacity
//	MAGNITUDE_LOGGING_LEVEL         -> logging.level
//
// The merged result is checked with struct tags before it is returned.
package config
