package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// secretKey 是一个全局变量，用于存储服务器在启动时生成的32字节密钥。
var secretKey []byte

// SessionPayload 定义了会话令牌中被签名的数据结构。
// 它在 /auth/login 的响应中下发，并可随后续请求回传校验。
type SessionPayload struct {
	SessionID string `json:"s"`
	UserID    uint   `json:"u"`
	IssuedAt  int64  `json:"t"`
}

// GenerateSecretKey 生成一个密码学安全的32字节随机密钥。
func GenerateSecretKey() {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		panic("无法生成安全的密钥: " + err.Error())
	}
	secretKey = key
	fmt.Println("HMAC密钥已成功生成。")
}

// IssueSessionToken 为指定用户签发一个新的会话令牌。
// 令牌格式为 base64(payload JSON) + "." + base64(HMAC-SHA256签名)。
func IssueSessionToken(userID uint) (string, error) {
	sessionID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成会话UUID v7: %w", err)
	}

	payload := SessionPayload{
		SessionID: sessionID.String(),
		UserID:    userID,
		IssuedAt:  time.Now().Unix(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", errors.New("无法序列化会话payload")
	}

	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	signature := mac.Sum(nil)

	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadBytes)
	encodedSignature := base64.RawURLEncoding.EncodeToString(signature)
	return encodedPayload + "." + encodedSignature, nil
}

// ValidateSessionToken 校验令牌的签名并还原其中的会话数据。
// 签名不匹配或格式非法时返回false。
func ValidateSessionToken(tokenStr string) (*SessionPayload, bool) {
	parts := strings.SplitN(tokenStr, ".", 2)
	if len(parts) != 2 {
		return nil, false
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, false
	}
	actualSignature, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, false
	}

	// 重新计算预期的签名并做恒定时间比较
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	expectedSignature := mac.Sum(nil)
	if !hmac.Equal(expectedSignature, actualSignature) {
		return nil, false
	}

	var payload SessionPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}
