package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_UnsupportedExtension(t *testing.T) {
	registry := NewDefaultRegistry()

	result := registry.Extract("archive.zip", []byte{0x50, 0x4b})

	assert.True(t, result.IsError())
	assert.Equal(t, "[Unsupported file type: .zip]", result.Content())
}

func TestRegistry_NoExtension(t *testing.T) {
	registry := NewDefaultRegistry()

	result := registry.Extract("README", []byte("plain content"))

	assert.True(t, result.IsError())
	assert.Equal(t, "[Unsupported file type: ]", result.Content())
}

func TestRegistry_ExtensionCaseInsensitive(t *testing.T) {
	registry := NewDefaultRegistry()

	result := registry.Extract("NOTES.TXT", []byte("  hello  "))

	assert.False(t, result.IsError())
	assert.Equal(t, "hello", result.Content())
}

func TestTextExtractor_Trims(t *testing.T) {
	result := NewTextExtractor().Extract("notes.txt", []byte("\n  line one\nline two  \n"))

	assert.False(t, result.IsError())
	assert.Equal(t, "line one\nline two", result.Content())
}

func TestTextExtractor_InvalidUTF8(t *testing.T) {
	result := NewTextExtractor().Extract("notes.txt", []byte{0xff, 0xfe, 0xfd})

	assert.True(t, result.IsError())
	assert.Contains(t, result.Content(), "[Error reading TXT file:")
}

func TestPDFExtractor_CorruptBytes(t *testing.T) {
	result := NewPDFExtractor().Extract("receipt.pdf", []byte("this is not a pdf"))

	assert.True(t, result.IsError())
	assert.Contains(t, result.Content(), "[Error reading PDF:")
}

func TestDocxExtractor_CorruptBytes(t *testing.T) {
	result := NewDocxExtractor().Extract("letter.docx", []byte("this is not a docx"))

	assert.True(t, result.IsError())
	assert.Contains(t, result.Content(), "[Error reading DOCX file:")
}

func TestHTMLExtractor(t *testing.T) {
	result := NewHTMLExtractor().Extract("page.html", []byte("<html><body><p>hello world</p></body></html>"))

	assert.False(t, result.IsError())
	assert.Equal(t, "hello world", result.Content())
}
