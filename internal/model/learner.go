// internal/model/learner.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// GuestLearnerID は認証無効かつ X-Learner-ID が無いときに使う固定ID
var GuestLearnerID = uuid.MustParse("00000000-0000-0000-0000-00000000a11e")

// LearnerClaims は学習者トークンのクレーム。sub に学習者のUUIDが入る。
type LearnerClaims struct {
	jwt.RegisteredClaims
}
