package engineconfig

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DotEnvPath is the optional dotenv file read by the viewer at startup.
const DotEnvPath = ".env"

// ReadDotEnv parses KEY=VALUE lines. Blank lines and # comments are skipped, and one pair of
// matching surrounding quotes is removed from values. A missing file yields an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return vars, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dotenv: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dotenv %s: %w", path, err)
	}
	return vars, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// environment merges the dotenv file under the process environment.
func environment(dotEnvPath string) (map[string]string, error) {
	vars := make(map[string]string)
	if dotEnvPath != "" {
		fileVars, err := ReadDotEnv(dotEnvPath)
		if err != nil {
			return nil, err
		}
		vars = fileVars
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}
