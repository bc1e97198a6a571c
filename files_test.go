/*
 * files_test.go, part of gocube.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cube

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//compressTo writes content to name through the writer returned by w.
func compressTo(Te *testing.T, name string, content []byte, w func(io.Writer) (io.WriteCloser, error)) {
	f, err := os.Create(name)
	require.NoError(Te, err)
	defer f.Close()
	z, err := w(f)
	require.NoError(Te, err)
	_, err = z.Write(content)
	require.NoError(Te, err)
	require.NoError(Te, z.Close())
}

func TestCompressedFiles(Te *testing.T) {
	plain, err := os.ReadFile(rootdirtest + "/h2o.cube")
	require.NoError(Te, err)
	ref, err := ReadBytes(plain)
	require.NoError(Te, err)

	dir := Te.TempDir()
	gzname := filepath.Join(dir, "h2o.cube.gz")
	compressTo(Te, gzname, plain, func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil })
	zstname := filepath.Join(dir, "h2o.cube.zst")
	compressTo(Te, zstname, plain, func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})

	for _, name := range []string{gzname, zstname} {
		C, err := FileRead(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, name, C.FileName())
		assert.Equal(Te, ref.Grid().RawData(), C.Grid().RawData(), name)
		assert.Equal(Te, ref.Molecule().Atoms(), C.Molecule().Atoms(), name)
		assert.Equal(Te, ref.Origin(), C.Origin(), name)
	}
}

func TestCorruptCompressedFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "broken.cube.gz")
	require.NoError(Te, os.WriteFile(name, []byte("this is not gzip data"), 0o644))
	_, err := FileRead(name)
	require.Error(Te, err)
	assert.True(Te, IsKind(err, IOError), err.Error())
	assert.Equal(Te, name, err.(*Error).FileName())
}

func TestFileErrorsCarryName(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "short.cube")
	require.NoError(Te, os.WriteFile(name, []byte(minimal[:len(minimal)-5]), 0o644))
	_, err := FileRead(name)
	require.Error(Te, err)
	assert.True(Te, IsKind(err, TruncationError))
	var e *Error = err.(*Error)
	assert.Equal(Te, name, e.FileName())
	assert.Contains(Te, e.Error(), name)
	assert.Equal(Te, []string{"readVoxels", "FileRead"}, e.Decorate(""))
}
