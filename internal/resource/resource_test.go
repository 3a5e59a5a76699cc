package resource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"minky/internal/resource"
)

func TestParsePathSplitsOnDoubleColon(t *testing.T) {
	p := resource.ParsePath("a::b::c")
	assert.Equal(t, resource.Path{"a", "b", "c"}, p)
	assert.Equal(t, "a::b::c", p.String())
}

func TestParsePathEmptyStringYieldsNil(t *testing.T) {
	assert.Nil(t, resource.ParsePath(""))
}

func TestNormalizeResolvesDotDot(t *testing.T) {
	result, err := resource.Normalize(resource.Path{"a", "b"}, resource.Path{"..", "c"})
	assert.Nil(t, err)
	assert.Equal(t, resource.Path{"a", "c"}, result)
}

func TestNormalizeEscapingRootIsError(t *testing.T) {
	_, err := resource.Normalize(nil, resource.Path{"..", "c"})
	assert.NotNil(t, err)
}

func TestFilesystemLoaderReadsModuleByDottedExtension(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "greet.mnk"), []byte("println 'hi'"), 0o644))

	loader := resource.NewFilesystemLoader(resource.Path{dir})
	source, err := loader.GetCode(resource.Path{"greet"})
	assert.Nil(t, err)
	assert.Equal(t, "println 'hi'", source)
}

func TestFilesystemLoaderMissingFileIsError(t *testing.T) {
	loader := resource.NewFilesystemLoader(resource.Path{t.TempDir()})
	_, err := loader.GetCode(resource.Path{"missing"})
	assert.NotNil(t, err)
}
