package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/fractions"
)

// run executes the command line in an empty directory so that no config file
// is picked up.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out, errb bytes.Buffer
	err = Run(context.Background(), args, strings.NewReader(stdin), &out, &errb)
	return out.String(), errb.String(), err
}

func TestRun_Usage(t *testing.T) {
	stdout, stderr, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Valid operators are * / + -")
	assert.Contains(t, stdout, "ex: 1/2 * 3_3/4")
	assert.Empty(t, stderr)
}

func TestRun_Expressions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "divide",
			args: []string{"2/3", "/", "1/2"},
			want: "= 1_1/3\n",
		},
		{
			name: "precedence",
			args: []string{"1/2", "+", "3/4", "/", "2/3"},
			want: "= 1_5/8\n",
		},
		{
			name: "leading negative",
			args: []string{"-2", "/", "1_1/2", "-", "1_2/3", "*", "-1/2"},
			want: "= -1/2\n",
		},
		{
			name: "single negative mixed",
			args: []string{"-2_1/2"},
			want: "= -2_1/2\n",
		},
		{
			name: "flag before negative",
			args: []string{"--workers", "2", "-1/2", "+", "1"},
			want: "= 1/2\n",
		},
		{
			name: "explicit separator",
			args: []string{"--", "-3", "*", "-3"},
			want: "= 9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, "", tt.args...)
			require.NoError(t, err, "stderr: %s", stderr)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind fractions.Kind
	}{
		{"missing operator", []string{"2/3", "1/4"}, fractions.OperatorOperandMismatch},
		{"trailing operator", []string{"2/3", "+"}, fractions.OperatorOperandMismatch},
		{"divide by zero", []string{"1", "/", "0/5"}, fractions.DivisionByZero},
		{"bad number", []string{"1_2_3"}, fractions.InvalidFormat},
		{"signed fraction", []string{"1_-3/4"}, fractions.InvalidFormat},
		{"zero denominator", []string{"1/0"}, fractions.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "want %v, got %v", tt.kind, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.kind.Error())
		})
	}
}

func TestRun_JSON(t *testing.T) {
	stdout, _, err := run(t, "", "-o", "json", "1/2", "*", "3_3/4")
	require.NoError(t, err)

	var got struct {
		Expression  string `json:"expression"`
		Result      string `json:"result"`
		Numerator   int64  `json:"numerator"`
		Denominator int64  `json:"denominator"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "1/2 * 3_3/4", got.Expression)
	assert.Equal(t, "1_7/8", got.Result)
	assert.Equal(t, int64(15), got.Numerator)
	assert.Equal(t, int64(8), got.Denominator)
}

func TestRun_Verbose(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "1", "+", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "evaluating expression")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: json\n"), 0o600))

	stdout, _, err := run(t, "", "--config", cfg, "1", "+", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "{"), "want JSON, got %q", stdout)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, stderr, err := run(t, "", "--workers", "0", "1")
	require.Error(t, err)
	assert.Contains(t, stderr, "workers must be at least 1")
}

func TestRun_Version(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "fractions v"+Version+"\n", stdout)
}

func TestProtectOperands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
		{
			name: "positive first",
			args: []string{"1", "-", "-2"},
			want: []string{"1", "-", "-2"},
		},
		{
			name: "negative first",
			args: []string{"-2", "+", "1"},
			want: []string{"--", "-2", "+", "1"},
		},
		{
			name: "negative mixed",
			args: []string{"-_1/2"},
			want: []string{"--", "-_1/2"},
		},
		{
			name: "after valued flag",
			args: []string{"-o", "json", "-2"},
			want: []string{"-o", "json", "--", "-2"},
		},
		{
			name: "after long flag",
			args: []string{"--output", "json", "-v", "-2"},
			want: []string{"--output", "json", "-v", "--", "-2"},
		},
		{
			name: "after long flag with value",
			args: []string{"--output=json", "-2"},
			want: []string{"--output=json", "--", "-2"},
		},
		{
			name: "already separated",
			args: []string{"--", "-2"},
			want: []string{"--", "-2"},
		},
		{
			name: "subcommand",
			args: []string{"repl", "-2"},
			want: []string{"repl", "-2"},
		},
		{
			name: "lone minus",
			args: []string{"-", "1"},
			want: []string{"-", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := protectOperands(NewRootCmd(), tt.args)
			assert.Equal(t, tt.want, got)
		})
	}
}
