package main

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestRunGoldenScenarios(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))

	cases := map[string]struct {
		commandSpec string
		input       string
	}{
		"insert_column": {"[1,1];icol", "a,b\nc,d\n"},
		"numeric_sum":   {"[1,1,2,3];sum [1,1]", "1,2,3\n4,5,6\n"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "table.csv", []byte(tc.input), 0644))

			code := run([]string{"-d", ",", tc.commandSpec, "table.csv"}, fsys)
			require.Equal(t, 0, code)

			out, err := afero.ReadFile(fsys, "table.csv")
			require.NoError(t, err)
			g.Assert(t, name, out)
		})
	}
}

func TestRunFailsCommandLeavesFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	original := "a,b\nc,d\n"
	require.NoError(t, afero.WriteFile(fsys, "table.csv", []byte(original), 0644))

	code := run([]string{"[99,99]", "table.csv"}, fsys)
	require.NotEqual(t, 0, code)

	out, err := afero.ReadFile(fsys, "table.csv")
	require.NoError(t, err)
	require.Equal(t, original, string(out))
}

func TestRunRejectsForbiddenDelimiter(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "table.csv", []byte("a,b\n"), 0644))

	code := run([]string{"-d", `"`, "", "table.csv"}, fsys)
	require.Equal(t, 2, code)
}

func TestRunMissingArgs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	code := run([]string{"onlyone"}, fsys)
	require.Equal(t, 1, code)
}

// TestRunScenarioS1EmptyCommandSpecRoundTrips is spec.md §8's S1: an empty
// COMMAND_SPEC is a legal zero-command run, and the table round-trips.
func TestRunScenarioS1EmptyCommandSpecRoundTrips(t *testing.T) {
	fsys := afero.NewMemMapFs()
	original := "a,b,c\nd,e,f\n"
	require.NoError(t, afero.WriteFile(fsys, "table.csv", []byte(original), 0644))

	code := run([]string{"-d", ",", "", "table.csv"}, fsys)
	require.Equal(t, 0, code)

	out, err := afero.ReadFile(fsys, "table.csv")
	require.NoError(t, err)
	require.Equal(t, original, string(out))
}
