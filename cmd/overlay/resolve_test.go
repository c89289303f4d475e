package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-overlay/internal/config"
)

func TestResolveCommand(t *testing.T) {
	type tc struct {
		args    []string
		want    []string
		wantErr string
	}

	tests := map[string]tc{
		"fits below": {
			args: []string{"--anchor", "100,50,80,30", "--content", "200,150", "--container", "0,0,1024,768"},
			want: []string{"placement: bottom-start", "top: 80", "left: 100", "clipped: false"},
		},
		"flips above": {
			args: []string{"--anchor", "100,700,80,30", "--content", "200,150", "--container", "0,0,1024,768", "--fallbacks", "top-start"},
			want: []string{"placement: top-start", "top: 550", "left: 100"},
		},
		"unbounded": {
			args: []string{"--anchor", "10,10,4,1", "--content", "8,3", "-p", "end-center"},
			want: []string{"placement: end-center", "top: 9", "left: 14"},
		},
		"origin": {
			args: []string{"--origin", "5,6", "--content", "3,3"},
			want: []string{"top: 6", "left: 5"},
		},
		"locale mirrors": {
			args: []string{"--anchor", "20,0,10,1", "--content", "4,2", "--locale", "he", "-p", "bottom-start"},
			want: []string{"placement: bottom-start", "left: 26"},
		},
		"clipped": {
			args: []string{"--anchor", "0,0,2,2", "--content", "50,50", "--container", "0,0,10,10", "--no-fallbacks"},
			want: []string{"clipped: true", "top: 0", "left: 0"},
		},
		"short anchor": {
			args:    []string{"--anchor", "1,2,3"},
			wantErr: "want 4 comma-separated numbers",
		},
		"not a number": {
			args:    []string{"--content", "a,2"},
			wantErr: "--content",
		},
		"negative size": {
			args:    []string{"--container", "0,0,-1,5"},
			wantErr: "must not be negative",
		},
		"bad placement": {
			args:    []string{"-p", "left"},
			wantErr: "--placement",
		},
		"bad fallback": {
			args:    []string{"--fallbacks", "top,middle"},
			wantErr: "--fallbacks",
		},
		"negative gap": {
			args:    []string{"--gap", "-1"},
			wantErr: "--gap",
		},
		"json and preview": {
			args:    []string{"--json", "--preview"},
			wantErr: "none of the others can be",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, append([]string{"resolve"}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestResolveCommand_JSON(t *testing.T) {
	out, err := execute(t, "resolve", "--json",
		"--anchor", "100,50,80,30", "--content", "200,150", "--container", "0,0,1024,768", "--gap", "4")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, resolveOutput{
		Placement: "bottom-start",
		Top:       84,
		Left:      100,
		Width:     200,
		Height:    150,
	}, got)
}

func TestResolveCommand_Preview(t *testing.T) {
	out, err := execute(t, "resolve", "--preview",
		"--anchor", "2,1,3,1", "--content", "4,2", "--container", "0,0,12,6")
	require.NoError(t, err)

	assert.Contains(t, out, "bottom-start  top=2 left=2")
	assert.Contains(t, out, "AAA")
	assert.Contains(t, out, "####")
	assert.NotContains(t, out, "#####", "the panel is four cells wide")

	_, err = execute(t, "resolve", "--preview", "--content", "0,0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to preview")

	_, err = execute(t, "resolve", "--preview", "--content", "500,10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestResolveCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`placement:
  anchor: {x: 300, y: 700, width: 80, height: 30}
  content: {width: 200, height: 150}
  container: {width: 1024, height: 768}
  preferred: bottom-end
`), 0o644))

	out, err := execute(t, "--config", path, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, "placement: top-end")
	assert.Contains(t, out, "top: 550")
	assert.Contains(t, out, "left: 180")

	out, err = execute(t, "--config", path, "resolve", "--anchor", "300,50,80,30")
	require.NoError(t, err)
	assert.Contains(t, out, "placement: bottom-end", "flags override the file")
	assert.Contains(t, out, "top: 80")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("placement:\n  preferred: sideways\n"), 0o644))
	_, err = execute(t, "--config", bad, "resolve")
	var validationErr *config.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "placement.preferred", validationErr.Field)
}
