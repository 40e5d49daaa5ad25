package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// ParseIdList parses a comma-separated list of numeric ids, skipping blanks.
func ParseIdList(raw string) ([]int64, error) {
	var ids []int64

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in list: %w", part, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
