package random

import (
	crand "crypto/rand"
	"encoding/base64"
	"math/rand/v2"
)

const alphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// AlphaNumeric 指定した文字数のランダム英数字文字列を生成します
// この関数はmath/randが生成する擬似乱数を使用します
func AlphaNumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumeric[rand.IntN(len(alphaNumeric))]
	}
	return string(b)
}

// Token nバイトの暗号学的に安全な乱数をURLセーフなBase64文字列で返します
//
// OAuth2のstateなど、推測されてはいけない値に使います。
func Token(n int) string {
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
