package readfiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointFile = []byte(`%
% Problem dimension
%
NDIME= 2
%
% Inner element connectivity
%
NELEM= 2
5 0 1 2 0
5 0 2 3 1
%
% Node coordinates
%
NPOIN= 4
0.0 0.0 0
1.0 0.0 1
1.0 1.0 2
-7.100939331382065 2.889910324036197 3
`)

func TestReadPoints(t *testing.T) {
	{ // Element sections are skipped
		X, Y, err := ReadPoints(bytes.NewReader(pointFile))
		require.NoError(t, err)
		require.Len(t, X, 4)
		require.Len(t, Y, 4)
		assert.Equal(t, []float64{0, 1, 1, -7.100939331382065}, X)
		assert.Equal(t, 2.889910324036197, Y[3])
	}
	{ // Bare point list without a trailing newline or point indices
		X, Y, err := ReadPoints(bytes.NewReader([]byte("NPOIN= 3\n0 0\n1 0\n0 1")))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 0}, X)
		assert.Equal(t, []float64{0, 0, 1}, Y)
	}
	{ // Truncated point list
		_, _, err := ReadPoints(bytes.NewReader([]byte("NPOIN= 3\n0 0\n1 0\n")))
		assert.True(t, errors.Is(err, ErrBadPointFile))
		assert.Contains(t, err.Error(), "early end of file")
	}
	{ // Wrong dimension and garbage counts
		_, _, err := ReadPoints(bytes.NewReader([]byte("NDIME= 3\nNPOIN= 1\n0 0 0\n")))
		assert.True(t, errors.Is(err, ErrBadPointFile))
		_, _, err = ReadPoints(bytes.NewReader([]byte("NPOIN= many\n")))
		assert.True(t, errors.Is(err, ErrBadPointFile))
		_, _, err = ReadPoints(bytes.NewReader([]byte("NPOIN= 1\nx y\n")))
		assert.True(t, errors.Is(err, ErrBadPointFile))
	}
}

func TestReadPointsFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "points.su2")
	require.NoError(t, os.WriteFile(name, pointFile, 0o644))
	X, _, err := ReadPointsFile(name, false)
	require.NoError(t, err)
	assert.Len(t, X, 4)

	_, _, err = ReadPointsFile(filepath.Join(t.TempDir(), "missing.su2"), false)
	assert.Error(t, err)
}
