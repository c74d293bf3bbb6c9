package server

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"

	"github.com/Faultbox/planetgen/internal/planet"
)

// errBadRequest marks client errors.
var errBadRequest = errors.New("bad request")

// Request overrides fields of the server's base descriptor. Nil fields keep
// the base value.
type Request struct {
	Seed        *int     `json:"seed,omitempty"`
	Depth       *int     `json:"depth,omitempty"`
	Radius      *float32 `json:"radius,omitempty"`
	DistanceAU  *float64 `json:"distance_au,omitempty"`
	OceanHeight *float32 `json:"ocean_height,omitempty"`
	Forestation *float32 `json:"forestation,omitempty"`
	Flora       *bool    `json:"flora,omitempty"`
	// RandSeed seeds color jitter, orbit phase and flora. Defaults to Seed.
	RandSeed *int64 `json:"rand_seed,omitempty"`
}

// resolve applies the overrides to base and returns the descriptor and the
// random seed to generate with.
func (r Request) resolve(base planet.Descriptor, maxDepth int) (planet.Descriptor, int64, error) {
	d := base
	if r.Seed != nil {
		d.Seed = *r.Seed
	}
	if r.Depth != nil {
		d.SubdivisionDepth = *r.Depth
	}
	if r.Radius != nil {
		d.Radius = *r.Radius
	}
	if r.DistanceAU != nil {
		d.DistanceAU = *r.DistanceAU
	}
	if r.OceanHeight != nil {
		d.OceanHeight = *r.OceanHeight
	}
	if r.Forestation != nil {
		d.Forestation = *r.Forestation
	}
	if r.Flora != nil {
		d.FloraEnabled = *r.Flora
	}

	if maxDepth > 0 && d.SubdivisionDepth > maxDepth {
		return d, 0, fmt.Errorf("%w: depth %d exceeds server limit %d", errBadRequest, d.SubdivisionDepth, maxDepth)
	}

	seed := int64(d.Seed)
	if r.RandSeed != nil {
		seed = *r.RandSeed
	}
	return d, seed, nil
}

// parseRequest reads overrides from URL query parameters.
func parseRequest(q url.Values) (Request, error) {
	var r Request
	var err error

	if r.Seed, err = parseInt(q, "seed"); err != nil {
		return r, err
	}
	if r.Depth, err = parseInt(q, "depth"); err != nil {
		return r, err
	}
	if r.Radius, err = parseFloat32(q, "radius"); err != nil {
		return r, err
	}
	if v := q.Get("distance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return r, fmt.Errorf("%w: distance: %v", errBadRequest, err)
		}
		r.DistanceAU = &f
	}
	if r.OceanHeight, err = parseFloat32(q, "ocean"); err != nil {
		return r, err
	}
	if r.Forestation, err = parseFloat32(q, "forestation"); err != nil {
		return r, err
	}
	if v := q.Get("flora"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return r, fmt.Errorf("%w: flora: %v", errBadRequest, err)
		}
		r.Flora = &b
	}
	if v := q.Get("rand"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return r, fmt.Errorf("%w: rand: %v", errBadRequest, err)
		}
		r.RandSeed = &n
	}
	return r, nil
}

func parseInt(q url.Values, key string) (*int, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errBadRequest, key, err)
	}
	return &n, nil
}

func parseFloat32(q url.Values, key string) (*float32, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errBadRequest, key, err)
	}
	f32 := float32(f)
	return &f32, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
