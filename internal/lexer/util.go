package lexer

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentStartByte(b byte) bool {
	return isLetter(b) || b == '_'
}

func isIdentContinueByte(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_'
}
