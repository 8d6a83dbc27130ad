package env

import "os"

// Host returns the Pagure instance generated documentation points at,
// without a scheme.
func Host() string {
	host := os.Getenv("GOPAGURE_HOST")
	if host != "" {
		return host
	}

	return "pagure.io"
}

func IsProd() bool {
	return os.Getenv("GOPAGURE_PRODUCTION") != ""
}
