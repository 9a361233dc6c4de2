package message

import (
	"strconv"

	"github.com/aptpod/katcp-go/errors"
)

// Newは、検証を行ってMessageを生成します。
//
// 検証は名前が空でないこと、名前が識別子の文法を満たすこと、IDがMaxID以下であること、種別が正しいことの順に行い、
// 最初に違反した条件を errors.ValidationError として返却します。
// 引数は検証しません。どのような文字列もシリアライズ時にエスケープされます。
func New(kind Kind, name string, id *uint32, arguments ...string) (*Message, error) {
	if err := validate(kind, name, id); err != nil {
		return nil, err
	}
	return NewUnchecked(kind, name, id, arguments...), nil
}

func validate(kind Kind, name string, id *uint32) error {
	if name == "" {
		return errors.ValidationError{Kind: errors.ValidationErrorEmptyName}
	}
	if pos := invalidNamePos(name); pos >= 0 {
		return errors.ValidationError{
			Kind:  errors.ValidationErrorInvalidNameCharacter,
			Pos:   pos,
			Value: name,
		}
	}
	if id != nil && *id > MaxID {
		return errors.ValidationError{
			Kind:  errors.ValidationErrorIdentifierOutOfRange,
			Value: strconv.FormatUint(uint64(*id), 10),
		}
	}
	if !kind.valid() {
		return errors.ValidationError{
			Kind:  errors.ValidationErrorInvalidKind,
			Value: kind.String(),
		}
	}
	return nil
}

// invalidNamePosは、名前の中で文法に違反する最初のバイト位置を返却します。違反がない場合は-1です。
func invalidNamePos(name string) int {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i == 0 {
			if !isAlpha(c) {
				return i
			}
			continue
		}
		if !isNameChar(c) {
			return i
		}
	}
	return -1
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNameChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-'
}
