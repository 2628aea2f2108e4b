// SPDX-License-Identifier: MIT

// Package config loads tilemap.Config from the environment.
//
// Sources, lowest precedence first:
//
//  1. tilemap.DefaultConfig()
//  2. .env-style files passed to Load (missing files are skipped)
//  3. the process environment
//
// Keys:
//
//	TERRAIN_TILE_EXPONENT  tile side = 2^k+1
//	TERRAIN_WIDTH          tiles across
//	TERRAIN_HEIGHT         tiles down
//	TERRAIN_MIN_ALT        altitude floor
//	TERRAIN_MAX_ALT        altitude ceiling
//	TERRAIN_JITTER         roughness in [0,1]
//	TERRAIN_SEED           RNG seed (0 = default seed)
//
// The result is validated with tilemap.Config.Validate.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/PhilSoe/JavaTerrainGen/tilemap"
)

// Environment keys.
const (
	KeyTileExponent = "TERRAIN_TILE_EXPONENT"
	KeyWidth        = "TERRAIN_WIDTH"
	KeyHeight       = "TERRAIN_HEIGHT"
	KeyMinAlt       = "TERRAIN_MIN_ALT"
	KeyMaxAlt       = "TERRAIN_MAX_ALT"
	KeyJitter       = "TERRAIN_JITTER"
	KeySeed         = "TERRAIN_SEED"
)

// ErrInvalidValue indicates a key whose value cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Load builds a Config from defaults, the given .env files and the process
// environment, then validates it.
//
// Errors:
//   - ErrInvalidValue for unparsable values.
//   - tilemap.ErrInvalidConfiguration from validation.
//   - read/parse errors of existing files.
func Load(files ...string) (tilemap.Config, error) {
	vars, err := readFiles(files)
	if err != nil {
		return tilemap.Config{}, err
	}
	for _, k := range []string{KeyTileExponent, KeyWidth, KeyHeight, KeyMinAlt, KeyMaxAlt, KeyJitter, KeySeed} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	cfg, err := FromMap(vars)
	if err != nil {
		return tilemap.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return tilemap.Config{}, err
	}

	return cfg, nil
}

// readFiles merges the given .env files; later files override earlier ones.
func readFiles(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, file := range files {
		m, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}

	return vars, nil
}

// FromMap overlays vars onto tilemap.DefaultConfig(). Unknown keys are
// ignored and the result is not validated.
//
// Errors:
//   - ErrInvalidValue (wrapped with the key) for unparsable values.
func FromMap(vars map[string]string) (tilemap.Config, error) {
	cfg := tilemap.DefaultConfig()
	ints := []struct {
		key string
		dst *int
	}{
		{KeyTileExponent, &cfg.TileExponent},
		{KeyWidth, &cfg.Width},
		{KeyHeight, &cfg.Height},
		{KeyMinAlt, &cfg.MinAlt},
		{KeyMaxAlt, &cfg.MaxAlt},
	}
	for _, f := range ints {
		v, ok := vars[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return tilemap.Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, f.key, v)
		}
		*f.dst = n
	}
	if v, ok := vars[KeyJitter]; ok {
		j, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return tilemap.Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeyJitter, v)
		}
		cfg.Jitter = j
	}
	if v, ok := vars[KeySeed]; ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return tilemap.Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeySeed, v)
		}
		cfg.Seed = s
	}

	return cfg, nil
}
