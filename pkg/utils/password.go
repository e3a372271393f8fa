package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 对超过 72 字节的输入直接报错，必须交给调用方处理
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword 比对失败或内部错误一律视为不匹配
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
