package ast

// Field names a child slot of a node. Each node kind has a fixed layout:
// Children[i] holds the element for Layout(kind)[i], or NoElementID when absent.
type Field uint8

const (
	FieldNone Field = iota
	FieldModifiers
	FieldKeyword
	FieldName
	FieldOpenBrace
	FieldCloseBrace
	FieldOpenParen
	FieldCloseParen
	FieldOpenBracket
	FieldCloseBracket
	FieldElements
	FieldMembers
	FieldItems
	FieldEOF
	FieldExtends
	FieldTypes
	FieldBody
	FieldSignature
	FieldSemicolon
	FieldParameters
	FieldParameter
	FieldDotDotDot
	FieldQuestion
	FieldTypeAnnotation
	FieldInitializer
	FieldEquals
	FieldValue
	FieldModuleReference
	FieldIdentifier
	FieldColon
	FieldType
	FieldElementType
	FieldReturnType
	FieldFatArrow
	FieldSeparator
	FieldLeft
	FieldDot
	FieldRight
	FieldOperator
	FieldOperand
	FieldDeclaration
	FieldDeclarators
	FieldDeclarator
	FieldStatements
	FieldStatement
	FieldCondition
	FieldElse
	FieldExpression
	FieldLabel
	FieldFirstSemicolon
	FieldSecondSemicolon
	FieldIncrementor
	FieldInKeyword
	FieldWhileKeyword
	FieldClauses
	FieldBlock
	FieldCatch
	FieldFinally
	FieldWhenTrue
	FieldWhenFalse
	FieldArgument
	FieldArguments

	fieldCount
)

var layouts = [kindCount][]Field{
	KindSourceUnit:    {FieldElements, FieldEOF},
	KindQualifiedName: {FieldLeft, FieldDot, FieldRight},

	KindModuleDeclaration:         {FieldModifiers, FieldKeyword, FieldName, FieldOpenBrace, FieldElements, FieldCloseBrace},
	KindClassDeclaration:          {FieldModifiers, FieldKeyword, FieldName, FieldExtends, FieldOpenBrace, FieldMembers, FieldCloseBrace},
	KindExtendsClause:             {FieldKeyword, FieldTypes},
	KindInterfaceDeclaration:      {FieldModifiers, FieldKeyword, FieldName, FieldExtends, FieldBody},
	KindFunctionDeclaration:       {FieldModifiers, FieldKeyword, FieldName, FieldSignature, FieldBody, FieldSemicolon},
	KindConstructorDeclaration:    {FieldModifiers, FieldKeyword, FieldSignature, FieldBody, FieldSemicolon},
	KindMemberFunctionDeclaration: {FieldModifiers, FieldName, FieldSignature, FieldBody, FieldSemicolon},
	KindMemberVariableDeclaration: {FieldModifiers, FieldDeclarator, FieldSemicolon},
	KindGetAccessor:               {FieldModifiers, FieldKeyword, FieldName, FieldSignature, FieldBody},
	KindSetAccessor:               {FieldModifiers, FieldKeyword, FieldName, FieldSignature, FieldBody},
	KindEnumDeclaration:           {FieldModifiers, FieldKeyword, FieldName, FieldOpenBrace, FieldElements, FieldCloseBrace},
	KindEnumElement:               {FieldName, FieldInitializer},
	KindImportDeclaration:         {FieldModifiers, FieldKeyword, FieldName, FieldEquals, FieldModuleReference, FieldSemicolon},
	KindExternalModuleReference:   {FieldKeyword, FieldOpenParen, FieldValue, FieldCloseParen},
	KindExportAssignment:          {FieldKeyword, FieldEquals, FieldIdentifier, FieldSemicolon},

	KindCallSignature:     {FieldParameters, FieldTypeAnnotation},
	KindParameterList:     {FieldOpenParen, FieldItems, FieldCloseParen},
	KindParameter:         {FieldDotDotDot, FieldModifiers, FieldName, FieldQuestion, FieldTypeAnnotation, FieldInitializer},
	KindTypeAnnotation:    {FieldColon, FieldType},
	KindArrayType:         {FieldElementType, FieldOpenBracket, FieldCloseBracket},
	KindObjectType:        {FieldOpenBrace, FieldMembers, FieldCloseBrace},
	KindFunctionType:      {FieldParameters, FieldFatArrow, FieldReturnType},
	KindPropertySignature: {FieldName, FieldQuestion, FieldTypeAnnotation, FieldSeparator},
	KindMethodSignature:   {FieldName, FieldQuestion, FieldSignature, FieldSeparator},

	KindVariableStatement:   {FieldModifiers, FieldDeclaration, FieldSemicolon},
	KindVariableDeclaration: {FieldKeyword, FieldDeclarators},
	KindVariableDeclarator:  {FieldName, FieldTypeAnnotation, FieldInitializer},
	KindEqualsValueClause:   {FieldEquals, FieldValue},

	KindBlock:               {FieldOpenBrace, FieldStatements, FieldCloseBrace},
	KindIfStatement:         {FieldKeyword, FieldOpenParen, FieldCondition, FieldCloseParen, FieldStatement, FieldElse},
	KindElseClause:          {FieldKeyword, FieldStatement},
	KindExpressionStatement: {FieldExpression, FieldSemicolon},
	KindReturnStatement:     {FieldKeyword, FieldExpression, FieldSemicolon},
	KindThrowStatement:      {FieldKeyword, FieldExpression, FieldSemicolon},
	KindBreakStatement:      {FieldKeyword, FieldLabel, FieldSemicolon},
	KindContinueStatement:   {FieldKeyword, FieldLabel, FieldSemicolon},
	KindDebuggerStatement:   {FieldKeyword, FieldSemicolon},
	KindEmptyStatement:      {FieldSemicolon},
	KindLabeledStatement:    {FieldLabel, FieldColon, FieldStatement},
	KindForStatement: {FieldKeyword, FieldOpenParen, FieldDeclaration, FieldInitializer, FieldFirstSemicolon,
		FieldCondition, FieldSecondSemicolon, FieldIncrementor, FieldCloseParen, FieldStatement},
	KindForInStatement:      {FieldKeyword, FieldOpenParen, FieldDeclaration, FieldLeft, FieldInKeyword, FieldExpression, FieldCloseParen, FieldStatement},
	KindWhileStatement:      {FieldKeyword, FieldOpenParen, FieldCondition, FieldCloseParen, FieldStatement},
	KindDoStatement:         {FieldKeyword, FieldStatement, FieldWhileKeyword, FieldOpenParen, FieldCondition, FieldCloseParen, FieldSemicolon},
	KindSwitchStatement:     {FieldKeyword, FieldOpenParen, FieldExpression, FieldCloseParen, FieldOpenBrace, FieldClauses, FieldCloseBrace},
	KindCaseSwitchClause:    {FieldKeyword, FieldExpression, FieldColon, FieldStatements},
	KindDefaultSwitchClause: {FieldKeyword, FieldColon, FieldStatements},
	KindWithStatement:       {FieldKeyword, FieldOpenParen, FieldExpression, FieldCloseParen, FieldStatement},
	KindTryStatement:        {FieldKeyword, FieldBlock, FieldCatch, FieldFinally},
	KindCatchClause:         {FieldKeyword, FieldOpenParen, FieldIdentifier, FieldTypeAnnotation, FieldCloseParen, FieldBlock},
	KindFinallyClause:       {FieldKeyword, FieldBlock},

	KindBinaryExpression:                     {FieldLeft, FieldOperator, FieldRight},
	KindAssignmentExpression:                 {FieldLeft, FieldOperator, FieldRight},
	KindCommaExpression:                      {FieldLeft, FieldOperator, FieldRight},
	KindConditionalExpression:                {FieldCondition, FieldQuestion, FieldWhenTrue, FieldColon, FieldWhenFalse},
	KindPrefixUnaryExpression:                {FieldOperator, FieldOperand},
	KindPostfixUnaryExpression:               {FieldOperand, FieldOperator},
	KindParenthesizedExpression:              {FieldOpenParen, FieldExpression, FieldCloseParen},
	KindMemberAccessExpression:               {FieldExpression, FieldDot, FieldName},
	KindElementAccessExpression:              {FieldExpression, FieldOpenBracket, FieldArgument, FieldCloseBracket},
	KindInvocationExpression:                 {FieldExpression, FieldArguments},
	KindArgumentList:                         {FieldOpenParen, FieldItems, FieldCloseParen},
	KindObjectCreationExpression:             {FieldKeyword, FieldExpression, FieldArguments},
	KindArrayLiteralExpression:               {FieldOpenBracket, FieldItems, FieldCloseBracket},
	KindObjectLiteralExpression:              {FieldOpenBrace, FieldItems, FieldCloseBrace},
	KindPropertyAssignment:                   {FieldName, FieldColon, FieldValue},
	KindFunctionExpression:                   {FieldKeyword, FieldName, FieldSignature, FieldBody},
	KindParenthesizedArrowFunctionExpression: {FieldSignature, FieldFatArrow, FieldBody},
	KindSimpleArrowFunctionExpression:        {FieldParameter, FieldFatArrow, FieldBody},
}

// fieldIndex[kind][field] is the slot of field in the kind's layout, or -1.
var fieldIndex = func() (idx [kindCount][fieldCount]int8) {
	for k := range idx {
		for f := range idx[k] {
			idx[k][f] = -1
		}
		for i, f := range layouts[k] {
			idx[k][f] = int8(i)
		}
	}
	return idx
}()

// Layout returns the ordered child fields of a node kind. The slice must not be modified.
func Layout(k Kind) []Field {
	if k >= kindCount {
		return nil
	}
	return layouts[k]
}

// HasField reports whether nodes of kind k have slot f.
func HasField(k Kind, f Field) bool {
	return k < kindCount && f < fieldCount && fieldIndex[k][f] >= 0
}

var fieldNames = [...]string{
	"None", "Modifiers", "Keyword", "Name", "OpenBrace", "CloseBrace", "OpenParen", "CloseParen",
	"OpenBracket", "CloseBracket", "Elements", "Members", "Items", "EOF", "Extends", "Types", "Body",
	"Signature", "Semicolon", "Parameters", "Parameter", "DotDotDot", "Question", "TypeAnnotation",
	"Initializer", "Equals", "Value", "ModuleReference", "Identifier", "Colon", "Type", "ElementType",
	"ReturnType", "FatArrow", "Separator", "Left", "Dot", "Right", "Operator", "Operand", "Declaration",
	"Declarators", "Declarator", "Statements", "Statement", "Condition", "Else", "Expression", "Label",
	"FirstSemicolon", "SecondSemicolon", "Incrementor", "InKeyword", "WhileKeyword", "Clauses", "Block",
	"Catch", "Finally", "WhenTrue", "WhenFalse", "Argument", "Arguments",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "Field(?)"
}
