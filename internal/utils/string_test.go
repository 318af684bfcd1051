package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmailSubject(t *testing.T) {
	assert.Equal(t, "account closure", NormalizeEmailSubject("Re: account closure"))
	assert.Equal(t, "account closure", NormalizeEmailSubject("Fwd: Re: account closure"))
	assert.Equal(t, "account closure", NormalizeEmailSubject("  account closure  "))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".pdf", FileExtension("Receipt.PDF"))
	assert.Equal(t, ".txt", FileExtension("notes.txt"))
	assert.Equal(t, "", FileExtension("README"))
}

func TestGenerateNanoIDWithPrefix(t *testing.T) {
	id := GenerateNanoIDWithPrefix("email", 24)

	assert.Regexp(t, "^email_[A-Za-z0-9]{24}$", id)
	assert.NotEqual(t, id, GenerateNanoIDWithPrefix("email", 24))
}
