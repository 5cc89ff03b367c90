package genpassword

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/XenorInspire/worgenx/internal/charset"
)

func TestGenerate_LengthAndAlphabetMembership(t *testing.T) {
	t.Parallel()

	classes := charset.Classes{Lowercase: true, Numbers: true}
	alphabet, err := charset.Build(classes)
	require.NoError(t, err)

	passwords, err := Generate(Config{Classes: classes, Length: 24, Count: 50})
	require.NoError(t, err)
	require.Len(t, passwords, 50)

	allowed := make(map[byte]bool, len(alphabet))
	for _, b := range alphabet {
		allowed[b] = true
	}

	for _, pw := range passwords {
		require.Len(t, pw, 24)

		for _, c := range []byte(pw) {
			require.Truef(t, allowed[c], "password %q contains byte %q not in alphabet", pw, c)
		}
	}
}

func TestGenerate_NotDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	classes := charset.Classes{Lowercase: true, Uppercase: true, Numbers: true, Special: true}

	first, err := Generate(Config{Classes: classes, Length: 32, Count: 1})
	require.NoError(t, err)

	second, err := Generate(Config{Classes: classes, Length: 32, Count: 1})
	require.NoError(t, err)

	// Extremely unlikely to collide with an OS-seeded source; a
	// collision here would indicate the RNG isn't actually being
	// re-seeded per call.
	require.NotEqual(t, first[0], second[0])
}

func TestGenerate_ZeroLength(t *testing.T) {
	t.Parallel()

	_, err := Generate(Config{Classes: charset.Classes{Lowercase: true}, Length: 0, Count: 1})
	require.Error(t, err)
}

func TestNewDocument_JSONShape(t *testing.T) {
	t.Parallel()

	classes := charset.Classes{Lowercase: true, Numbers: true}
	cfg := Config{Classes: classes, Length: 8, Count: 2}
	doc := NewDocument(cfg, classes, []string{"ab12cd34", "ef56gh78"})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	body := string(raw)
	for _, field := range []string{
		`"number_of_passwords":2`,
		`"password_length":8`,
		`"uppercase":false`,
		`"lowercase":true`,
		`"numbers":true`,
		`"special_characters":false`,
		`"passwords":["ab12cd34","ef56gh78"]`,
	} {
		require.Truef(t, strings.Contains(body, field), "JSON %s missing field %s", body, field)
	}
}
