package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"chatbox-lab/errors"
)

//go:embed censored/*
var censoredFolder embed.FS

// CensoredData carries the loading result including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadCensoredWords reads the embedded per-language word lists. The file
// name (without extension) is the language label.
func LoadCensoredWords() (CensoredData, error) {
	entries, err := fs.ReadDir(censoredFolder, "censored")
	if err != nil {
		return CensoredData{}, err
	}

	seen := make(map[string]struct{})
	var data CensoredData
	for _, entry := range entries {
		if entry.IsDir() {
			return CensoredData{}, errors.ErrOnlyCensoredFiles
		}
		content, err := censoredFolder.ReadFile("censored/" + entry.Name())
		if err != nil {
			return CensoredData{}, err
		}

		scanner := bufio.NewScanner(bytes.NewReader(content))
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			data.Words = append(data.Words, word)
		}
		if err := scanner.Err(); err != nil {
			return CensoredData{}, err
		}

		lang := strings.TrimSuffix(entry.Name(), ".txt")
		data.Languages = append(data.Languages, lang)
	}

	if len(data.Words) == 0 {
		return CensoredData{}, errors.ErrEmptyWords
	}
	return data, nil
}
