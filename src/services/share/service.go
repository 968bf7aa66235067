package share

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/trainings"
)

var ErrBadToken = errors.New("invalid share token")

// EncodeTraining serializes a training into a portable token: base64 over
// the plain JSON document. Anyone holding the token can import the
// training on another device.
func EncodeTraining(t models.Training) (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeTraining parses a share token back into a training document.
func DecodeTraining(token string) (*models.Training, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrBadToken
	}

	var t models.Training
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, ErrBadToken
	}
	if t.ID == "" {
		return nil, ErrBadToken
	}
	return &t, nil
}

// Resolve implements the respondent access flow: short inputs are access
// codes looked up locally; anything longer is treated as a full token,
// decoded and saved so the evaluation can run on this instance.
func Resolve(ctx context.Context, codeOrToken string) (*models.Training, error) {
	if len(codeOrToken) <= 6 {
		return trainings.GetTrainingByCode(ctx, codeOrToken)
	}

	t, err := DecodeTraining(codeOrToken)
	if err != nil {
		return nil, err
	}
	if err := trainings.SaveTraining(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
