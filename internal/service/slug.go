package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify 将商品名转为 URL 友好的 slug：
// 小写、去除重音符号、非字母数字折叠为单个连字符、去掉首尾连字符。
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	// NFD 分解后丢弃组合记号，去掉重音
	decomposed := norm.NFD.String(lowered)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	var out strings.Builder
	out.Grow(b.Len())
	lastHyphen := false
	for _, r := range b.String() {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			out.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(out.String(), "-")
}
