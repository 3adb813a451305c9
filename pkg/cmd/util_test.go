package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/go-galois/pkg/poly"
)

func TestParsePoly(t *testing.T) {
	p, err := parsePoly("1,1,0,1")
	require.NoError(t, err)
	require.True(t, p.Equal(poly.New(map[uint]int64{0: 1, 1: 1, 3: 1})))
	// whitespace and negatives
	p, err = parsePoly(" -1, 0, 2 ")
	require.NoError(t, err)
	require.True(t, p.Equal(poly.New(map[uint]int64{0: -1, 2: 2})))
	// single residue
	p, err = parsePoly("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), p.Get(0))
}

func TestParsePoly_Invalid(t *testing.T) {
	for _, s := range []string{"", "1,x,0", "1,,1", "1.5"} {
		_, err := parsePoly(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestFieldFromFlags(t *testing.T) {
	cmd := rootCmd
	require.NoError(t, cmd.PersistentFlags().Set("prime", "2"))
	require.NoError(t, cmd.PersistentFlags().Set("degree", "3"))
	require.NoError(t, cmd.PersistentFlags().Set("modulus", "1,1,0,1"))
	// folds the persistent flags into cmd.Flags()
	require.NoError(t, cmd.ParseFlags(nil))
	//
	f, err := fieldFromFlags(cmd)
	require.NoError(t, err)
	require.Equal(t, uint64(8), f.Order())
}

func TestFieldFromFlags_MissingModulus(t *testing.T) {
	cmd := rootCmd
	require.NoError(t, cmd.PersistentFlags().Set("prime", "2"))
	require.NoError(t, cmd.PersistentFlags().Set("degree", "2"))
	require.NoError(t, cmd.PersistentFlags().Set("modulus", ""))
	require.NoError(t, cmd.ParseFlags(nil))
	//
	_, err := fieldFromFlags(cmd)
	require.Error(t, err)
}
