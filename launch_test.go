package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaunchSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		request         LaunchRequest
		wantCommandLine string
		wantArgs        []string
		wantDir         string
	}{
		{
			"With secondary path",
			LaunchRequest{ExecutablePath: `C:\Apps\Foo\Foo.exe`, SecondaryPath: `D:\data\cal.db`},
			`"C:\Apps\Foo\Foo.exe" --db "D:\data\cal.db"`,
			[]string{"--db", `D:\data\cal.db`},
			`C:\Apps\Foo`,
		},
		{
			"Without secondary path",
			LaunchRequest{ExecutablePath: "/opt/foo/foo"},
			`"/opt/foo/foo"`,
			nil,
			"/opt/foo",
		},
		{
			"Paths with spaces",
			LaunchRequest{ExecutablePath: `C:\Program Files\Foo\Foo.exe`, SecondaryPath: `C:\My Data\cal.db`},
			`"C:\Program Files\Foo\Foo.exe" --db "C:\My Data\cal.db"`,
			[]string{"--db", `C:\My Data\cal.db`},
			`C:\Program Files\Foo`,
		},
		{
			"No separator",
			LaunchRequest{ExecutablePath: "Foo.exe"},
			`"Foo.exe"`,
			nil,
			"",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := newLaunchSpec(&tt.request, defaultTestConfig())
			assert.Equal(t, tt.request.ExecutablePath, spec.Program)
			assert.Equal(t, tt.wantCommandLine, spec.CommandLine)
			assert.Equal(t, tt.wantArgs, spec.Args)
			assert.Equal(t, tt.wantDir, spec.Dir)
			assert.Nil(t, spec.Env, "the environment must be inherited")
			assert.True(t, spec.Hidden)
		})
	}
}

func TestNewLaunchSpecIsIdempotent(t *testing.T) {
	t.Parallel()

	request := &LaunchRequest{ExecutablePath: `C:\Apps\Foo\Foo.exe`, SecondaryPath: `D:\data\cal.db`}
	assert.Equal(t, newLaunchSpec(request, defaultTestConfig()), newLaunchSpec(request, defaultTestConfig()))
}

func TestNewLaunchSpecCustomFlag(t *testing.T) {
	t.Parallel()

	config := &RelauncherConfig{SecondaryFlag: "--database"}
	config.SetDefaultValues()
	spec := newLaunchSpec(&LaunchRequest{ExecutablePath: "/opt/foo/foo", SecondaryPath: "/var/foo.db"}, config)
	assert.Equal(t, `"/opt/foo/foo" --database "/var/foo.db"`, spec.CommandLine)
	assert.Equal(t, []string{"--database", "/var/foo.db"}, spec.Args)
}

func TestWorkingDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		executable string
		want       string
	}{
		{`C:\Apps\Foo\Foo.exe`, `C:\Apps\Foo`},
		{`C:/Apps/Foo/Foo.exe`, `C:/Apps/Foo`},
		{`C:\Apps/Foo\Foo.exe`, `C:\Apps/Foo`},
		{"/opt/foo/foo", "/opt/foo"},
		{"Foo.exe", ""},
		{"/Foo", ""},
		{`C:\Foo.exe`, "C:"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, workingDir(tt.executable), tt.executable)
	}
}

func TestExecCmd(t *testing.T) {
	t.Parallel()

	spec := LaunchSpec{Program: "foo", Args: []string{"--db", "bar"}, Dir: "/somewhere"}
	cmd, err := spec.execCmd()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cmd.Path))
	assert.Equal(t, "foo", filepath.Base(cmd.Path))
	assert.Equal(t, []string{"foo", "--db", "bar"}, cmd.Args)
	assert.Equal(t, "/somewhere", cmd.Dir)
	assert.Nil(t, cmd.Env)
}

func TestStartMissingExecutable(t *testing.T) {
	t.Parallel()

	program := filepath.Join(t.TempDir(), "missing", "app")
	err := osProcessStarter{}.Start(LaunchSpec{Program: program, CommandLine: quote(program), Hidden: true})

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, program, launchErr.Program)
}
