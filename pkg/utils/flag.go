package utils

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetTestFlag overrides a registered flag for the duration of the test and
// restores its previous value on cleanup. The flag must exist; packages
// register their flags at init time, so a miss means a typo in the name.
func SetTestFlag(t *testing.T, name, value string) {
	t.Helper()
	registered := flag.Lookup(name)
	require.NotNilf(t, registered, "flag %q is not registered", name)
	prevValue := registered.Value.String()
	t.Cleanup(func() { require.NoError(t, flag.Set(name, prevValue)) })
	require.NoError(t, flag.Set(name, value))
}
