package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/denv/internal/core/domain"
)

func TestNewForSystem_Platform(t *testing.T) {
	cases := []struct {
		goos, goarch string
		want         domain.Platform
	}{
		{"linux", "amd64", "linux-64"},
		{"linux", "arm64", "linux-aarch64"},
		{"darwin", "amd64", "osx-64"},
		{"darwin", "arm64", "osx-arm64"},
		{"windows", "amd64", "win-64"},
		{"freebsd", "amd64", "freebsd-amd64"},
	}

	for _, c := range cases {
		d := newForSystem(c.goos, c.goarch)
		assert.Equal(t, c.want, d.Current(), "%s/%s", c.goos, c.goarch)
	}
}

func TestNewForSystem_VirtualPackages(t *testing.T) {
	d := newForSystem("linux", "amd64")

	names := make(map[string]domain.VirtualPackage)
	for _, v := range d.VirtualPackages() {
		names[v.Name] = v
	}

	assert.Contains(t, names, "__unix")
	assert.Contains(t, names, "__linux")
	assert.Equal(t, "2.17", names["__glibc"].Version)
	assert.Equal(t, "x86_64", names["__archspec"].Build)

	d = newForSystem("darwin", "arm64")
	names = make(map[string]domain.VirtualPackage)
	for _, v := range d.VirtualPackages() {
		names[v.Name] = v
	}
	assert.Contains(t, names, "__osx")
	assert.NotContains(t, names, "__linux")
	assert.Equal(t, "aarch64", names["__archspec"].Build)
}

func TestNew_MatchesHost(t *testing.T) {
	d := New()
	assert.NotEmpty(t, d.Current().String())
}
