package lexer

import (
	"errors"
)

// ErrConsumePastEOF 在 EOF 之后继续消耗 token 时返回
var ErrConsumePastEOF = errors.New("cannot consume past end of input")

// TokenStream 带有界前瞻的 token 流
// 隐藏通道上的 token（注释）在填充缓冲区时被过滤掉
type TokenStream struct {
	lexer *Lexer
	buf   []Token
	eof   bool
}

// NewTokenStream 创建一个 token 流
func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

// fill 填充缓冲区直到至少有 n 个可见 token（或遇到 EOF）
func (s *TokenStream) fill(n int) {
	for len(s.buf) < n && !s.eof {
		tok := s.lexer.NextToken()
		if tok.Channel == ChannelHidden {
			continue
		}
		s.buf = append(s.buf, tok)
		if tok.Kind == TOKEN_EOF {
			s.eof = true
		}
	}
}

// LT 查看第 k 个未消耗的 token（k=1 为下一个）
// k<=0 返回空 token；越过末尾返回 EOF token
func (s *TokenStream) LT(k int) Token {
	if k <= 0 {
		return Token{Kind: TOKEN_NONE}
	}
	s.fill(k)
	if k > len(s.buf) {
		// 缓冲区以 EOF 结尾，越界一律返回它
		return s.buf[len(s.buf)-1]
	}
	return s.buf[k-1]
}

// Consume 消耗当前 token
// 消耗 EOF 是使用错误
func (s *TokenStream) Consume() error {
	s.fill(1)
	if s.buf[0].Kind == TOKEN_EOF {
		return ErrConsumePastEOF
	}
	s.buf = s.buf[1:]
	return nil
}
