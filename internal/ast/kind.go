package ast

// Kind identifies the grammar production of a node. Tokens report KindToken
// and carry their token.Kind separately; lists report KindList or KindSeparatedList.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindToken
	KindList
	KindSeparatedList

	KindSourceUnit
	KindQualifiedName

	// declarations
	KindModuleDeclaration
	KindClassDeclaration
	KindExtendsClause
	KindInterfaceDeclaration
	KindFunctionDeclaration
	KindConstructorDeclaration
	KindMemberFunctionDeclaration
	KindMemberVariableDeclaration
	KindGetAccessor
	KindSetAccessor
	KindEnumDeclaration
	KindEnumElement
	KindImportDeclaration
	KindExternalModuleReference
	KindExportAssignment

	// signatures and types
	KindCallSignature
	KindParameterList
	KindParameter
	KindTypeAnnotation
	KindArrayType
	KindObjectType
	KindFunctionType
	KindPropertySignature
	KindMethodSignature

	// variables
	KindVariableStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindEqualsValueClause

	// statements
	KindBlock
	KindIfStatement
	KindElseClause
	KindExpressionStatement
	KindReturnStatement
	KindThrowStatement
	KindBreakStatement
	KindContinueStatement
	KindDebuggerStatement
	KindEmptyStatement
	KindLabeledStatement
	KindForStatement
	KindForInStatement
	KindWhileStatement
	KindDoStatement
	KindSwitchStatement
	KindCaseSwitchClause
	KindDefaultSwitchClause
	KindWithStatement
	KindTryStatement
	KindCatchClause
	KindFinallyClause

	// expressions
	KindBinaryExpression
	KindAssignmentExpression
	KindCommaExpression
	KindConditionalExpression
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindParenthesizedExpression
	KindMemberAccessExpression
	KindElementAccessExpression
	KindInvocationExpression
	KindArgumentList
	KindObjectCreationExpression
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindPropertyAssignment
	KindFunctionExpression
	KindParenthesizedArrowFunctionExpression
	KindSimpleArrowFunctionExpression

	kindCount
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindToken:         "Token",
	KindList:          "List",
	KindSeparatedList: "SeparatedList",

	KindSourceUnit:    "SourceUnit",
	KindQualifiedName: "QualifiedName",

	KindModuleDeclaration:         "ModuleDeclaration",
	KindClassDeclaration:          "ClassDeclaration",
	KindExtendsClause:             "ExtendsClause",
	KindInterfaceDeclaration:      "InterfaceDeclaration",
	KindFunctionDeclaration:       "FunctionDeclaration",
	KindConstructorDeclaration:    "ConstructorDeclaration",
	KindMemberFunctionDeclaration: "MemberFunctionDeclaration",
	KindMemberVariableDeclaration: "MemberVariableDeclaration",
	KindGetAccessor:               "GetAccessor",
	KindSetAccessor:               "SetAccessor",
	KindEnumDeclaration:           "EnumDeclaration",
	KindEnumElement:               "EnumElement",
	KindImportDeclaration:         "ImportDeclaration",
	KindExternalModuleReference:   "ExternalModuleReference",
	KindExportAssignment:          "ExportAssignment",

	KindCallSignature:     "CallSignature",
	KindParameterList:     "ParameterList",
	KindParameter:         "Parameter",
	KindTypeAnnotation:    "TypeAnnotation",
	KindArrayType:         "ArrayType",
	KindObjectType:        "ObjectType",
	KindFunctionType:      "FunctionType",
	KindPropertySignature: "PropertySignature",
	KindMethodSignature:   "MethodSignature",

	KindVariableStatement:   "VariableStatement",
	KindVariableDeclaration: "VariableDeclaration",
	KindVariableDeclarator:  "VariableDeclarator",
	KindEqualsValueClause:   "EqualsValueClause",

	KindBlock:               "Block",
	KindIfStatement:         "IfStatement",
	KindElseClause:          "ElseClause",
	KindExpressionStatement: "ExpressionStatement",
	KindReturnStatement:     "ReturnStatement",
	KindThrowStatement:      "ThrowStatement",
	KindBreakStatement:      "BreakStatement",
	KindContinueStatement:   "ContinueStatement",
	KindDebuggerStatement:   "DebuggerStatement",
	KindEmptyStatement:      "EmptyStatement",
	KindLabeledStatement:    "LabeledStatement",
	KindForStatement:        "ForStatement",
	KindForInStatement:      "ForInStatement",
	KindWhileStatement:      "WhileStatement",
	KindDoStatement:         "DoStatement",
	KindSwitchStatement:     "SwitchStatement",
	KindCaseSwitchClause:    "CaseSwitchClause",
	KindDefaultSwitchClause: "DefaultSwitchClause",
	KindWithStatement:       "WithStatement",
	KindTryStatement:        "TryStatement",
	KindCatchClause:         "CatchClause",
	KindFinallyClause:       "FinallyClause",

	KindBinaryExpression:                     "BinaryExpression",
	KindAssignmentExpression:                 "AssignmentExpression",
	KindCommaExpression:                      "CommaExpression",
	KindConditionalExpression:                "ConditionalExpression",
	KindPrefixUnaryExpression:                "PrefixUnaryExpression",
	KindPostfixUnaryExpression:               "PostfixUnaryExpression",
	KindParenthesizedExpression:              "ParenthesizedExpression",
	KindMemberAccessExpression:               "MemberAccessExpression",
	KindElementAccessExpression:              "ElementAccessExpression",
	KindInvocationExpression:                 "InvocationExpression",
	KindArgumentList:                         "ArgumentList",
	KindObjectCreationExpression:             "ObjectCreationExpression",
	KindArrayLiteralExpression:               "ArrayLiteralExpression",
	KindObjectLiteralExpression:              "ObjectLiteralExpression",
	KindPropertyAssignment:                   "PropertyAssignment",
	KindFunctionExpression:                   "FunctionExpression",
	KindParenthesizedArrowFunctionExpression: "ParenthesizedArrowFunctionExpression",
	KindSimpleArrowFunctionExpression:        "SimpleArrowFunctionExpression",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsStatement reports whether nodes of this kind may stand in a statement list.
func (k Kind) IsStatement() bool {
	switch k {
	case KindFunctionDeclaration, KindVariableStatement, KindBlock, KindIfStatement,
		KindExpressionStatement, KindReturnStatement, KindThrowStatement, KindBreakStatement,
		KindContinueStatement, KindDebuggerStatement, KindEmptyStatement, KindLabeledStatement,
		KindForStatement, KindForInStatement, KindWhileStatement, KindDoStatement,
		KindSwitchStatement, KindWithStatement, KindTryStatement:
		return true
	default:
		return false
	}
}

// IsModuleElement reports whether the kind may appear directly in a source unit or module body.
func (k Kind) IsModuleElement() bool {
	switch k {
	case KindModuleDeclaration, KindClassDeclaration, KindInterfaceDeclaration,
		KindEnumDeclaration, KindImportDeclaration, KindExportAssignment:
		return true
	default:
		return k.IsStatement()
	}
}

// IsClassElement reports whether the kind is a class member.
func (k Kind) IsClassElement() bool {
	switch k {
	case KindConstructorDeclaration, KindMemberFunctionDeclaration, KindMemberVariableDeclaration,
		KindGetAccessor, KindSetAccessor:
		return true
	default:
		return false
	}
}

// IsArrowFunction reports whether the kind is either arrow function form.
func (k Kind) IsArrowFunction() bool {
	return k == KindParenthesizedArrowFunctionExpression || k == KindSimpleArrowFunctionExpression
}
