// Package source 负责按指定编码读取并解码 Java 源文件
package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// 解码错误策略
const (
	OnErrorStrict  = "strict"  // 非法字节序列视为错误
	OnErrorReplace = "replace" // 非法字节序列替换为 U+FFFD
)

// ReadFile 读取文件并按指定编码解码
// encodingName 是 IANA 编码名（如 utf-8、windows-1251）
func ReadFile(path, encodingName, onError string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data, encodingName, onError)
}

// Decode 按指定编码解码字节序列
func Decode(data []byte, encodingName, onError string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))

	// UTF-8 直通，只做合法性处理
	if name == "" || name == "utf-8" || name == "utf8" || name == "ascii" || name == "us-ascii" {
		if utf8.Valid(data) {
			return string(data), nil
		}
		if onError == OnErrorReplace {
			return strings.ToValidUTF8(string(data), "�"), nil
		}
		return "", fmt.Errorf("invalid %s byte sequence in input", encodingName)
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported encoding %q", encodingName)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}

	// 解码器把非法序列替换为 U+FFFD，strict 策略下视为错误
	if onError != OnErrorReplace && bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("malformed input for encoding %q", encodingName)
	}
	return string(decoded), nil
}
