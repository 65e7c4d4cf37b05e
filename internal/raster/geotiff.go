package raster

import (
	"fmt"
	"sync"

	"github.com/airbusgeo/godal"
)

var registerOnce sync.Once

func registerDrivers() {
	registerOnce.Do(godal.RegisterAll)
}

// Read loads every band of a GeoTIFF into float64 planes, along with its
// geotransform and projection.
func Read(path string) (*Raster, error) {
	registerDrivers()

	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer ds.Close()

	st := ds.Structure()
	profile := Profile{
		Width:      st.SizeX,
		Height:     st.SizeY,
		Projection: ds.Projection(),
	}
	// Downloaded composites always carry a geotransform, but a plain TIFF
	// without one is still loadable.
	if gt, err := ds.GeoTransform(); err == nil {
		profile.GeoTransform = gt
	}

	r := New(profile, st.NBands)
	for i, band := range ds.Bands() {
		if err := band.Read(0, 0, r.Bands[i], st.SizeX, st.SizeY); err != nil {
			return nil, fmt.Errorf("read band %d of %s: %w", i+1, path, err)
		}
	}
	return r, nil
}

// WriteUint8 re-encodes the first band of r as a single-band byte GeoTIFF.
// Used for classification rasters whose values fit the label domain.
func WriteUint8(path string, r *Raster) error {
	registerDrivers()

	ds, err := create(path, 1, godal.Byte, r.Profile)
	if err != nil {
		return err
	}

	buf := make([]uint8, len(r.Bands[0]))
	for i, v := range r.Bands[0] {
		buf[i] = uint8(v)
	}
	if err := ds.Bands()[0].Write(0, 0, buf, r.Profile.Width, r.Profile.Height); err != nil {
		ds.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return ds.Close()
}

// WriteFloat32 writes every band of r as float32, e.g. the feature stack
// produced by the spectral index calculator.
func WriteFloat32(path string, r *Raster) error {
	registerDrivers()

	ds, err := create(path, r.NumBands(), godal.Float32, r.Profile)
	if err != nil {
		return err
	}

	buf := make([]float32, r.Size())
	for i, band := range ds.Bands() {
		for j, v := range r.Bands[i] {
			buf[j] = float32(v)
		}
		if err := band.Write(0, 0, buf, r.Profile.Width, r.Profile.Height); err != nil {
			ds.Close()
			return fmt.Errorf("write band %d of %s: %w", i+1, path, err)
		}
	}
	return ds.Close()
}

func create(path string, nBands int, dtype godal.DataType, profile Profile) (*godal.Dataset, error) {
	ds, err := godal.Create(godal.GTiff, path, nBands, dtype, profile.Width, profile.Height)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := ds.SetGeoTransform(profile.GeoTransform); err != nil {
		ds.Close()
		return nil, fmt.Errorf("set geotransform of %s: %w", path, err)
	}
	if profile.Projection != "" {
		if err := ds.SetProjection(profile.Projection); err != nil {
			ds.Close()
			return nil, fmt.Errorf("set projection of %s: %w", path, err)
		}
	}
	return ds, nil
}
