package app

import "context"

func (uc *TranslateUseCase) TranslateOne(ctx context.Context, text, targetLang string) (string, error) {
	out, err := uc.translate.Translate(ctx, []string{text}, targetLang)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

func (uc *TranslateUseCase) TranslateMany(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	return uc.translate.Translate(ctx, texts, targetLang)
}
