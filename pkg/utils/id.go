package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GerarNumeroCotacao gera o número público de uma cotação, no formato
// COT-AAAAMM-XXXXXX.
func GerarNumeroCotacao(agora time.Time) (string, error) {
	sufixo, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("COT-%s-%s", agora.Format("200601"), sufixo), nil
}
