package ast

// Visitor has one method per node variant. Accept on a node calls the method
// for its concrete type and returns the method's result.
type Visitor interface {
	// Identifiers and literals.
	VisitSimpleIdentifier(node *SimpleIdentifier) interface{}
	VisitPrefixedIdentifier(node *PrefixedIdentifier) interface{}
	VisitLibraryIdentifier(node *LibraryIdentifier) interface{}
	VisitIntegerLiteral(node *IntegerLiteral) interface{}
	VisitDoubleLiteral(node *DoubleLiteral) interface{}
	VisitBooleanLiteral(node *BooleanLiteral) interface{}
	VisitNullLiteral(node *NullLiteral) interface{}
	VisitSimpleStringLiteral(node *SimpleStringLiteral) interface{}
	VisitAdjacentStrings(node *AdjacentStrings) interface{}
	VisitStringInterpolation(node *StringInterpolation) interface{}
	VisitInterpolationExpression(node *InterpolationExpression) interface{}
	VisitInterpolationString(node *InterpolationString) interface{}
	VisitSymbolLiteral(node *SymbolLiteral) interface{}
	VisitListLiteral(node *ListLiteral) interface{}
	VisitMapLiteral(node *MapLiteral) interface{}
	VisitMapLiteralEntry(node *MapLiteralEntry) interface{}

	// Expressions.
	VisitArgumentList(node *ArgumentList) interface{}
	VisitAsExpression(node *AsExpression) interface{}
	VisitAssignmentExpression(node *AssignmentExpression) interface{}
	VisitAwaitExpression(node *AwaitExpression) interface{}
	VisitBinaryExpression(node *BinaryExpression) interface{}
	VisitCascadeExpression(node *CascadeExpression) interface{}
	VisitConditionalExpression(node *ConditionalExpression) interface{}
	VisitFunctionExpression(node *FunctionExpression) interface{}
	VisitFunctionExpressionInvocation(node *FunctionExpressionInvocation) interface{}
	VisitIndexExpression(node *IndexExpression) interface{}
	VisitInstanceCreationExpression(node *InstanceCreationExpression) interface{}
	VisitIsExpression(node *IsExpression) interface{}
	VisitMethodInvocation(node *MethodInvocation) interface{}
	VisitNamedExpression(node *NamedExpression) interface{}
	VisitParenthesizedExpression(node *ParenthesizedExpression) interface{}
	VisitPostfixExpression(node *PostfixExpression) interface{}
	VisitPrefixExpression(node *PrefixExpression) interface{}
	VisitPropertyAccess(node *PropertyAccess) interface{}
	VisitRethrowExpression(node *RethrowExpression) interface{}
	VisitSuperExpression(node *SuperExpression) interface{}
	VisitThisExpression(node *ThisExpression) interface{}
	VisitThrowExpression(node *ThrowExpression) interface{}

	// Statements.
	VisitAssertStatement(node *AssertStatement) interface{}
	VisitBlock(node *Block) interface{}
	VisitBreakStatement(node *BreakStatement) interface{}
	VisitContinueStatement(node *ContinueStatement) interface{}
	VisitDoStatement(node *DoStatement) interface{}
	VisitEmptyStatement(node *EmptyStatement) interface{}
	VisitExpressionStatement(node *ExpressionStatement) interface{}
	VisitForEachStatement(node *ForEachStatement) interface{}
	VisitForStatement(node *ForStatement) interface{}
	VisitFunctionDeclarationStatement(node *FunctionDeclarationStatement) interface{}
	VisitIfStatement(node *IfStatement) interface{}
	VisitLabel(node *Label) interface{}
	VisitLabeledStatement(node *LabeledStatement) interface{}
	VisitReturnStatement(node *ReturnStatement) interface{}
	VisitSwitchStatement(node *SwitchStatement) interface{}
	VisitSwitchCase(node *SwitchCase) interface{}
	VisitSwitchDefault(node *SwitchDefault) interface{}
	VisitTryStatement(node *TryStatement) interface{}
	VisitCatchClause(node *CatchClause) interface{}
	VisitVariableDeclarationStatement(node *VariableDeclarationStatement) interface{}
	VisitWhileStatement(node *WhileStatement) interface{}
	VisitYieldStatement(node *YieldStatement) interface{}

	// Function bodies.
	VisitBlockFunctionBody(node *BlockFunctionBody) interface{}
	VisitExpressionFunctionBody(node *ExpressionFunctionBody) interface{}
	VisitEmptyFunctionBody(node *EmptyFunctionBody) interface{}
	VisitNativeFunctionBody(node *NativeFunctionBody) interface{}

	// Declarations.
	VisitAnnotation(node *Annotation) interface{}
	VisitClassDeclaration(node *ClassDeclaration) interface{}
	VisitClassTypeAlias(node *ClassTypeAlias) interface{}
	VisitExtendsClause(node *ExtendsClause) interface{}
	VisitWithClause(node *WithClause) interface{}
	VisitImplementsClause(node *ImplementsClause) interface{}
	VisitNativeClause(node *NativeClause) interface{}
	VisitConstructorDeclaration(node *ConstructorDeclaration) interface{}
	VisitConstructorFieldInitializer(node *ConstructorFieldInitializer) interface{}
	VisitConstructorName(node *ConstructorName) interface{}
	VisitRedirectingConstructorInvocation(node *RedirectingConstructorInvocation) interface{}
	VisitSuperConstructorInvocation(node *SuperConstructorInvocation) interface{}
	VisitEnumDeclaration(node *EnumDeclaration) interface{}
	VisitEnumConstantDeclaration(node *EnumConstantDeclaration) interface{}
	VisitFieldDeclaration(node *FieldDeclaration) interface{}
	VisitFunctionDeclaration(node *FunctionDeclaration) interface{}
	VisitFunctionTypeAlias(node *FunctionTypeAlias) interface{}
	VisitMethodDeclaration(node *MethodDeclaration) interface{}
	VisitTopLevelVariableDeclaration(node *TopLevelVariableDeclaration) interface{}
	VisitVariableDeclaration(node *VariableDeclaration) interface{}
	VisitVariableDeclarationList(node *VariableDeclarationList) interface{}
	VisitDeclaredIdentifier(node *DeclaredIdentifier) interface{}
	VisitTypeName(node *TypeName) interface{}
	VisitTypeArgumentList(node *TypeArgumentList) interface{}
	VisitTypeParameter(node *TypeParameter) interface{}
	VisitTypeParameterList(node *TypeParameterList) interface{}

	// Parameters.
	VisitFormalParameterList(node *FormalParameterList) interface{}
	VisitSimpleFormalParameter(node *SimpleFormalParameter) interface{}
	VisitFieldFormalParameter(node *FieldFormalParameter) interface{}
	VisitFunctionTypedFormalParameter(node *FunctionTypedFormalParameter) interface{}
	VisitDefaultFormalParameter(node *DefaultFormalParameter) interface{}

	// Units and directives.
	VisitCompilationUnit(node *CompilationUnit) interface{}
	VisitScriptTag(node *ScriptTag) interface{}
	VisitLibraryDirective(node *LibraryDirective) interface{}
	VisitImportDirective(node *ImportDirective) interface{}
	VisitExportDirective(node *ExportDirective) interface{}
	VisitPartDirective(node *PartDirective) interface{}
	VisitPartOfDirective(node *PartOfDirective) interface{}
	VisitShowCombinator(node *ShowCombinator) interface{}
	VisitHideCombinator(node *HideCombinator) interface{}
}

// BaseVisitor returns nil for every node. Embed it to implement only the
// methods a visitor cares about.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitSimpleIdentifier(node *SimpleIdentifier) interface{}               { return nil }
func (v *BaseVisitor) VisitPrefixedIdentifier(node *PrefixedIdentifier) interface{}           { return nil }
func (v *BaseVisitor) VisitLibraryIdentifier(node *LibraryIdentifier) interface{}             { return nil }
func (v *BaseVisitor) VisitIntegerLiteral(node *IntegerLiteral) interface{}                   { return nil }
func (v *BaseVisitor) VisitDoubleLiteral(node *DoubleLiteral) interface{}                     { return nil }
func (v *BaseVisitor) VisitBooleanLiteral(node *BooleanLiteral) interface{}                   { return nil }
func (v *BaseVisitor) VisitNullLiteral(node *NullLiteral) interface{}                         { return nil }
func (v *BaseVisitor) VisitSimpleStringLiteral(node *SimpleStringLiteral) interface{}         { return nil }
func (v *BaseVisitor) VisitAdjacentStrings(node *AdjacentStrings) interface{}                 { return nil }
func (v *BaseVisitor) VisitStringInterpolation(node *StringInterpolation) interface{}         { return nil }
func (v *BaseVisitor) VisitInterpolationExpression(node *InterpolationExpression) interface{} { return nil }
func (v *BaseVisitor) VisitInterpolationString(node *InterpolationString) interface{}         { return nil }
func (v *BaseVisitor) VisitSymbolLiteral(node *SymbolLiteral) interface{}                     { return nil }
func (v *BaseVisitor) VisitListLiteral(node *ListLiteral) interface{}                         { return nil }
func (v *BaseVisitor) VisitMapLiteral(node *MapLiteral) interface{}                           { return nil }
func (v *BaseVisitor) VisitMapLiteralEntry(node *MapLiteralEntry) interface{}                 { return nil }
func (v *BaseVisitor) VisitArgumentList(node *ArgumentList) interface{}                                 { return nil }
func (v *BaseVisitor) VisitAsExpression(node *AsExpression) interface{}                                 { return nil }
func (v *BaseVisitor) VisitAssignmentExpression(node *AssignmentExpression) interface{}                 { return nil }
func (v *BaseVisitor) VisitAwaitExpression(node *AwaitExpression) interface{}                           { return nil }
func (v *BaseVisitor) VisitBinaryExpression(node *BinaryExpression) interface{}                         { return nil }
func (v *BaseVisitor) VisitCascadeExpression(node *CascadeExpression) interface{}                       { return nil }
func (v *BaseVisitor) VisitConditionalExpression(node *ConditionalExpression) interface{}               { return nil }
func (v *BaseVisitor) VisitFunctionExpression(node *FunctionExpression) interface{}                     { return nil }
func (v *BaseVisitor) VisitFunctionExpressionInvocation(node *FunctionExpressionInvocation) interface{} { return nil }
func (v *BaseVisitor) VisitIndexExpression(node *IndexExpression) interface{}                           { return nil }
func (v *BaseVisitor) VisitInstanceCreationExpression(node *InstanceCreationExpression) interface{}     { return nil }
func (v *BaseVisitor) VisitIsExpression(node *IsExpression) interface{}                                 { return nil }
func (v *BaseVisitor) VisitMethodInvocation(node *MethodInvocation) interface{}                         { return nil }
func (v *BaseVisitor) VisitNamedExpression(node *NamedExpression) interface{}                           { return nil }
func (v *BaseVisitor) VisitParenthesizedExpression(node *ParenthesizedExpression) interface{}           { return nil }
func (v *BaseVisitor) VisitPostfixExpression(node *PostfixExpression) interface{}                       { return nil }
func (v *BaseVisitor) VisitPrefixExpression(node *PrefixExpression) interface{}                         { return nil }
func (v *BaseVisitor) VisitPropertyAccess(node *PropertyAccess) interface{}                             { return nil }
func (v *BaseVisitor) VisitRethrowExpression(node *RethrowExpression) interface{}                       { return nil }
func (v *BaseVisitor) VisitSuperExpression(node *SuperExpression) interface{}                           { return nil }
func (v *BaseVisitor) VisitThisExpression(node *ThisExpression) interface{}                             { return nil }
func (v *BaseVisitor) VisitThrowExpression(node *ThrowExpression) interface{}                           { return nil }
func (v *BaseVisitor) VisitAssertStatement(node *AssertStatement) interface{}                           { return nil }
func (v *BaseVisitor) VisitBlock(node *Block) interface{}                                               { return nil }
func (v *BaseVisitor) VisitBreakStatement(node *BreakStatement) interface{}                             { return nil }
func (v *BaseVisitor) VisitContinueStatement(node *ContinueStatement) interface{}                       { return nil }
func (v *BaseVisitor) VisitDoStatement(node *DoStatement) interface{}                                   { return nil }
func (v *BaseVisitor) VisitEmptyStatement(node *EmptyStatement) interface{}                             { return nil }
func (v *BaseVisitor) VisitExpressionStatement(node *ExpressionStatement) interface{}                   { return nil }
func (v *BaseVisitor) VisitForEachStatement(node *ForEachStatement) interface{}                         { return nil }
func (v *BaseVisitor) VisitForStatement(node *ForStatement) interface{}                                 { return nil }
func (v *BaseVisitor) VisitFunctionDeclarationStatement(node *FunctionDeclarationStatement) interface{} { return nil }
func (v *BaseVisitor) VisitIfStatement(node *IfStatement) interface{}                                   { return nil }
func (v *BaseVisitor) VisitLabel(node *Label) interface{}                                               { return nil }
func (v *BaseVisitor) VisitLabeledStatement(node *LabeledStatement) interface{}                         { return nil }
func (v *BaseVisitor) VisitReturnStatement(node *ReturnStatement) interface{}                           { return nil }
func (v *BaseVisitor) VisitSwitchStatement(node *SwitchStatement) interface{}                           { return nil }
func (v *BaseVisitor) VisitSwitchCase(node *SwitchCase) interface{}                                     { return nil }
func (v *BaseVisitor) VisitSwitchDefault(node *SwitchDefault) interface{}                               { return nil }
func (v *BaseVisitor) VisitTryStatement(node *TryStatement) interface{}                                 { return nil }
func (v *BaseVisitor) VisitCatchClause(node *CatchClause) interface{}                                   { return nil }
func (v *BaseVisitor) VisitVariableDeclarationStatement(node *VariableDeclarationStatement) interface{} { return nil }
func (v *BaseVisitor) VisitWhileStatement(node *WhileStatement) interface{}                             { return nil }
func (v *BaseVisitor) VisitYieldStatement(node *YieldStatement) interface{}                             { return nil }
func (v *BaseVisitor) VisitBlockFunctionBody(node *BlockFunctionBody) interface{}           { return nil }
func (v *BaseVisitor) VisitExpressionFunctionBody(node *ExpressionFunctionBody) interface{} { return nil }
func (v *BaseVisitor) VisitEmptyFunctionBody(node *EmptyFunctionBody) interface{}           { return nil }
func (v *BaseVisitor) VisitNativeFunctionBody(node *NativeFunctionBody) interface{}         { return nil }
func (v *BaseVisitor) VisitAnnotation(node *Annotation) interface{}                                             { return nil }
func (v *BaseVisitor) VisitClassDeclaration(node *ClassDeclaration) interface{}                                 { return nil }
func (v *BaseVisitor) VisitClassTypeAlias(node *ClassTypeAlias) interface{}                                     { return nil }
func (v *BaseVisitor) VisitExtendsClause(node *ExtendsClause) interface{}                                       { return nil }
func (v *BaseVisitor) VisitWithClause(node *WithClause) interface{}                                             { return nil }
func (v *BaseVisitor) VisitImplementsClause(node *ImplementsClause) interface{}                                 { return nil }
func (v *BaseVisitor) VisitNativeClause(node *NativeClause) interface{}                                         { return nil }
func (v *BaseVisitor) VisitConstructorDeclaration(node *ConstructorDeclaration) interface{}                     { return nil }
func (v *BaseVisitor) VisitConstructorFieldInitializer(node *ConstructorFieldInitializer) interface{}           { return nil }
func (v *BaseVisitor) VisitConstructorName(node *ConstructorName) interface{}                                   { return nil }
func (v *BaseVisitor) VisitRedirectingConstructorInvocation(node *RedirectingConstructorInvocation) interface{} { return nil }
func (v *BaseVisitor) VisitSuperConstructorInvocation(node *SuperConstructorInvocation) interface{}             { return nil }
func (v *BaseVisitor) VisitEnumDeclaration(node *EnumDeclaration) interface{}                                   { return nil }
func (v *BaseVisitor) VisitEnumConstantDeclaration(node *EnumConstantDeclaration) interface{}                   { return nil }
func (v *BaseVisitor) VisitFieldDeclaration(node *FieldDeclaration) interface{}                                 { return nil }
func (v *BaseVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) interface{}                           { return nil }
func (v *BaseVisitor) VisitFunctionTypeAlias(node *FunctionTypeAlias) interface{}                               { return nil }
func (v *BaseVisitor) VisitMethodDeclaration(node *MethodDeclaration) interface{}                               { return nil }
func (v *BaseVisitor) VisitTopLevelVariableDeclaration(node *TopLevelVariableDeclaration) interface{}           { return nil }
func (v *BaseVisitor) VisitVariableDeclaration(node *VariableDeclaration) interface{}                           { return nil }
func (v *BaseVisitor) VisitVariableDeclarationList(node *VariableDeclarationList) interface{}                   { return nil }
func (v *BaseVisitor) VisitDeclaredIdentifier(node *DeclaredIdentifier) interface{}                             { return nil }
func (v *BaseVisitor) VisitTypeName(node *TypeName) interface{}                                                 { return nil }
func (v *BaseVisitor) VisitTypeArgumentList(node *TypeArgumentList) interface{}                                 { return nil }
func (v *BaseVisitor) VisitTypeParameter(node *TypeParameter) interface{}                                       { return nil }
func (v *BaseVisitor) VisitTypeParameterList(node *TypeParameterList) interface{}                               { return nil }
func (v *BaseVisitor) VisitFormalParameterList(node *FormalParameterList) interface{}                   { return nil }
func (v *BaseVisitor) VisitSimpleFormalParameter(node *SimpleFormalParameter) interface{}               { return nil }
func (v *BaseVisitor) VisitFieldFormalParameter(node *FieldFormalParameter) interface{}                 { return nil }
func (v *BaseVisitor) VisitFunctionTypedFormalParameter(node *FunctionTypedFormalParameter) interface{} { return nil }
func (v *BaseVisitor) VisitDefaultFormalParameter(node *DefaultFormalParameter) interface{}             { return nil }
func (v *BaseVisitor) VisitCompilationUnit(node *CompilationUnit) interface{}   { return nil }
func (v *BaseVisitor) VisitScriptTag(node *ScriptTag) interface{}               { return nil }
func (v *BaseVisitor) VisitLibraryDirective(node *LibraryDirective) interface{} { return nil }
func (v *BaseVisitor) VisitImportDirective(node *ImportDirective) interface{}   { return nil }
func (v *BaseVisitor) VisitExportDirective(node *ExportDirective) interface{}   { return nil }
func (v *BaseVisitor) VisitPartDirective(node *PartDirective) interface{}       { return nil }
func (v *BaseVisitor) VisitPartOfDirective(node *PartOfDirective) interface{}   { return nil }
func (v *BaseVisitor) VisitShowCombinator(node *ShowCombinator) interface{}     { return nil }
func (v *BaseVisitor) VisitHideCombinator(node *HideCombinator) interface{}     { return nil }

// WalkingVisitor visits every node of a tree in source order. For each node it
// first calls the delegate's method, then walks the node's children.
type WalkingVisitor struct {
	visitor Visitor
}

// NewWalkingVisitor creates a walking visitor that delegates to visitor.
func NewWalkingVisitor(visitor Visitor) *WalkingVisitor {
	return &WalkingVisitor{visitor: visitor}
}

// Walk traverses the tree rooted at node and returns the delegate's result
// for the root.
func (w *WalkingVisitor) Walk(node Node) interface{} {
	if isNil(node) {
		return nil
	}
	return node.Accept(w)
}

func (w *WalkingVisitor) descend(node Node, result interface{}) interface{} {
	VisitChildren(node, w)
	return result
}

func (w *WalkingVisitor) VisitSimpleIdentifier(node *SimpleIdentifier) interface{} {
	return w.descend(node, w.visitor.VisitSimpleIdentifier(node))
}
func (w *WalkingVisitor) VisitPrefixedIdentifier(node *PrefixedIdentifier) interface{} {
	return w.descend(node, w.visitor.VisitPrefixedIdentifier(node))
}
func (w *WalkingVisitor) VisitLibraryIdentifier(node *LibraryIdentifier) interface{} {
	return w.descend(node, w.visitor.VisitLibraryIdentifier(node))
}
func (w *WalkingVisitor) VisitIntegerLiteral(node *IntegerLiteral) interface{} {
	return w.descend(node, w.visitor.VisitIntegerLiteral(node))
}
func (w *WalkingVisitor) VisitDoubleLiteral(node *DoubleLiteral) interface{} {
	return w.descend(node, w.visitor.VisitDoubleLiteral(node))
}
func (w *WalkingVisitor) VisitBooleanLiteral(node *BooleanLiteral) interface{} {
	return w.descend(node, w.visitor.VisitBooleanLiteral(node))
}
func (w *WalkingVisitor) VisitNullLiteral(node *NullLiteral) interface{} {
	return w.descend(node, w.visitor.VisitNullLiteral(node))
}
func (w *WalkingVisitor) VisitSimpleStringLiteral(node *SimpleStringLiteral) interface{} {
	return w.descend(node, w.visitor.VisitSimpleStringLiteral(node))
}
func (w *WalkingVisitor) VisitAdjacentStrings(node *AdjacentStrings) interface{} {
	return w.descend(node, w.visitor.VisitAdjacentStrings(node))
}
func (w *WalkingVisitor) VisitStringInterpolation(node *StringInterpolation) interface{} {
	return w.descend(node, w.visitor.VisitStringInterpolation(node))
}
func (w *WalkingVisitor) VisitInterpolationExpression(node *InterpolationExpression) interface{} {
	return w.descend(node, w.visitor.VisitInterpolationExpression(node))
}
func (w *WalkingVisitor) VisitInterpolationString(node *InterpolationString) interface{} {
	return w.descend(node, w.visitor.VisitInterpolationString(node))
}
func (w *WalkingVisitor) VisitSymbolLiteral(node *SymbolLiteral) interface{} {
	return w.descend(node, w.visitor.VisitSymbolLiteral(node))
}
func (w *WalkingVisitor) VisitListLiteral(node *ListLiteral) interface{} {
	return w.descend(node, w.visitor.VisitListLiteral(node))
}
func (w *WalkingVisitor) VisitMapLiteral(node *MapLiteral) interface{} {
	return w.descend(node, w.visitor.VisitMapLiteral(node))
}
func (w *WalkingVisitor) VisitMapLiteralEntry(node *MapLiteralEntry) interface{} {
	return w.descend(node, w.visitor.VisitMapLiteralEntry(node))
}
func (w *WalkingVisitor) VisitArgumentList(node *ArgumentList) interface{} {
	return w.descend(node, w.visitor.VisitArgumentList(node))
}
func (w *WalkingVisitor) VisitAsExpression(node *AsExpression) interface{} {
	return w.descend(node, w.visitor.VisitAsExpression(node))
}
func (w *WalkingVisitor) VisitAssignmentExpression(node *AssignmentExpression) interface{} {
	return w.descend(node, w.visitor.VisitAssignmentExpression(node))
}
func (w *WalkingVisitor) VisitAwaitExpression(node *AwaitExpression) interface{} {
	return w.descend(node, w.visitor.VisitAwaitExpression(node))
}
func (w *WalkingVisitor) VisitBinaryExpression(node *BinaryExpression) interface{} {
	return w.descend(node, w.visitor.VisitBinaryExpression(node))
}
func (w *WalkingVisitor) VisitCascadeExpression(node *CascadeExpression) interface{} {
	return w.descend(node, w.visitor.VisitCascadeExpression(node))
}
func (w *WalkingVisitor) VisitConditionalExpression(node *ConditionalExpression) interface{} {
	return w.descend(node, w.visitor.VisitConditionalExpression(node))
}
func (w *WalkingVisitor) VisitFunctionExpression(node *FunctionExpression) interface{} {
	return w.descend(node, w.visitor.VisitFunctionExpression(node))
}
func (w *WalkingVisitor) VisitFunctionExpressionInvocation(node *FunctionExpressionInvocation) interface{} {
	return w.descend(node, w.visitor.VisitFunctionExpressionInvocation(node))
}
func (w *WalkingVisitor) VisitIndexExpression(node *IndexExpression) interface{} {
	return w.descend(node, w.visitor.VisitIndexExpression(node))
}
func (w *WalkingVisitor) VisitInstanceCreationExpression(node *InstanceCreationExpression) interface{} {
	return w.descend(node, w.visitor.VisitInstanceCreationExpression(node))
}
func (w *WalkingVisitor) VisitIsExpression(node *IsExpression) interface{} {
	return w.descend(node, w.visitor.VisitIsExpression(node))
}
func (w *WalkingVisitor) VisitMethodInvocation(node *MethodInvocation) interface{} {
	return w.descend(node, w.visitor.VisitMethodInvocation(node))
}
func (w *WalkingVisitor) VisitNamedExpression(node *NamedExpression) interface{} {
	return w.descend(node, w.visitor.VisitNamedExpression(node))
}
func (w *WalkingVisitor) VisitParenthesizedExpression(node *ParenthesizedExpression) interface{} {
	return w.descend(node, w.visitor.VisitParenthesizedExpression(node))
}
func (w *WalkingVisitor) VisitPostfixExpression(node *PostfixExpression) interface{} {
	return w.descend(node, w.visitor.VisitPostfixExpression(node))
}
func (w *WalkingVisitor) VisitPrefixExpression(node *PrefixExpression) interface{} {
	return w.descend(node, w.visitor.VisitPrefixExpression(node))
}
func (w *WalkingVisitor) VisitPropertyAccess(node *PropertyAccess) interface{} {
	return w.descend(node, w.visitor.VisitPropertyAccess(node))
}
func (w *WalkingVisitor) VisitRethrowExpression(node *RethrowExpression) interface{} {
	return w.descend(node, w.visitor.VisitRethrowExpression(node))
}
func (w *WalkingVisitor) VisitSuperExpression(node *SuperExpression) interface{} {
	return w.descend(node, w.visitor.VisitSuperExpression(node))
}
func (w *WalkingVisitor) VisitThisExpression(node *ThisExpression) interface{} {
	return w.descend(node, w.visitor.VisitThisExpression(node))
}
func (w *WalkingVisitor) VisitThrowExpression(node *ThrowExpression) interface{} {
	return w.descend(node, w.visitor.VisitThrowExpression(node))
}
func (w *WalkingVisitor) VisitAssertStatement(node *AssertStatement) interface{} {
	return w.descend(node, w.visitor.VisitAssertStatement(node))
}
func (w *WalkingVisitor) VisitBlock(node *Block) interface{} {
	return w.descend(node, w.visitor.VisitBlock(node))
}
func (w *WalkingVisitor) VisitBreakStatement(node *BreakStatement) interface{} {
	return w.descend(node, w.visitor.VisitBreakStatement(node))
}
func (w *WalkingVisitor) VisitContinueStatement(node *ContinueStatement) interface{} {
	return w.descend(node, w.visitor.VisitContinueStatement(node))
}
func (w *WalkingVisitor) VisitDoStatement(node *DoStatement) interface{} {
	return w.descend(node, w.visitor.VisitDoStatement(node))
}
func (w *WalkingVisitor) VisitEmptyStatement(node *EmptyStatement) interface{} {
	return w.descend(node, w.visitor.VisitEmptyStatement(node))
}
func (w *WalkingVisitor) VisitExpressionStatement(node *ExpressionStatement) interface{} {
	return w.descend(node, w.visitor.VisitExpressionStatement(node))
}
func (w *WalkingVisitor) VisitForEachStatement(node *ForEachStatement) interface{} {
	return w.descend(node, w.visitor.VisitForEachStatement(node))
}
func (w *WalkingVisitor) VisitForStatement(node *ForStatement) interface{} {
	return w.descend(node, w.visitor.VisitForStatement(node))
}
func (w *WalkingVisitor) VisitFunctionDeclarationStatement(node *FunctionDeclarationStatement) interface{} {
	return w.descend(node, w.visitor.VisitFunctionDeclarationStatement(node))
}
func (w *WalkingVisitor) VisitIfStatement(node *IfStatement) interface{} {
	return w.descend(node, w.visitor.VisitIfStatement(node))
}
func (w *WalkingVisitor) VisitLabel(node *Label) interface{} {
	return w.descend(node, w.visitor.VisitLabel(node))
}
func (w *WalkingVisitor) VisitLabeledStatement(node *LabeledStatement) interface{} {
	return w.descend(node, w.visitor.VisitLabeledStatement(node))
}
func (w *WalkingVisitor) VisitReturnStatement(node *ReturnStatement) interface{} {
	return w.descend(node, w.visitor.VisitReturnStatement(node))
}
func (w *WalkingVisitor) VisitSwitchStatement(node *SwitchStatement) interface{} {
	return w.descend(node, w.visitor.VisitSwitchStatement(node))
}
func (w *WalkingVisitor) VisitSwitchCase(node *SwitchCase) interface{} {
	return w.descend(node, w.visitor.VisitSwitchCase(node))
}
func (w *WalkingVisitor) VisitSwitchDefault(node *SwitchDefault) interface{} {
	return w.descend(node, w.visitor.VisitSwitchDefault(node))
}
func (w *WalkingVisitor) VisitTryStatement(node *TryStatement) interface{} {
	return w.descend(node, w.visitor.VisitTryStatement(node))
}
func (w *WalkingVisitor) VisitCatchClause(node *CatchClause) interface{} {
	return w.descend(node, w.visitor.VisitCatchClause(node))
}
func (w *WalkingVisitor) VisitVariableDeclarationStatement(node *VariableDeclarationStatement) interface{} {
	return w.descend(node, w.visitor.VisitVariableDeclarationStatement(node))
}
func (w *WalkingVisitor) VisitWhileStatement(node *WhileStatement) interface{} {
	return w.descend(node, w.visitor.VisitWhileStatement(node))
}
func (w *WalkingVisitor) VisitYieldStatement(node *YieldStatement) interface{} {
	return w.descend(node, w.visitor.VisitYieldStatement(node))
}
func (w *WalkingVisitor) VisitBlockFunctionBody(node *BlockFunctionBody) interface{} {
	return w.descend(node, w.visitor.VisitBlockFunctionBody(node))
}
func (w *WalkingVisitor) VisitExpressionFunctionBody(node *ExpressionFunctionBody) interface{} {
	return w.descend(node, w.visitor.VisitExpressionFunctionBody(node))
}
func (w *WalkingVisitor) VisitEmptyFunctionBody(node *EmptyFunctionBody) interface{} {
	return w.descend(node, w.visitor.VisitEmptyFunctionBody(node))
}
func (w *WalkingVisitor) VisitNativeFunctionBody(node *NativeFunctionBody) interface{} {
	return w.descend(node, w.visitor.VisitNativeFunctionBody(node))
}
func (w *WalkingVisitor) VisitAnnotation(node *Annotation) interface{} {
	return w.descend(node, w.visitor.VisitAnnotation(node))
}
func (w *WalkingVisitor) VisitClassDeclaration(node *ClassDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitClassDeclaration(node))
}
func (w *WalkingVisitor) VisitClassTypeAlias(node *ClassTypeAlias) interface{} {
	return w.descend(node, w.visitor.VisitClassTypeAlias(node))
}
func (w *WalkingVisitor) VisitExtendsClause(node *ExtendsClause) interface{} {
	return w.descend(node, w.visitor.VisitExtendsClause(node))
}
func (w *WalkingVisitor) VisitWithClause(node *WithClause) interface{} {
	return w.descend(node, w.visitor.VisitWithClause(node))
}
func (w *WalkingVisitor) VisitImplementsClause(node *ImplementsClause) interface{} {
	return w.descend(node, w.visitor.VisitImplementsClause(node))
}
func (w *WalkingVisitor) VisitNativeClause(node *NativeClause) interface{} {
	return w.descend(node, w.visitor.VisitNativeClause(node))
}
func (w *WalkingVisitor) VisitConstructorDeclaration(node *ConstructorDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitConstructorDeclaration(node))
}
func (w *WalkingVisitor) VisitConstructorFieldInitializer(node *ConstructorFieldInitializer) interface{} {
	return w.descend(node, w.visitor.VisitConstructorFieldInitializer(node))
}
func (w *WalkingVisitor) VisitConstructorName(node *ConstructorName) interface{} {
	return w.descend(node, w.visitor.VisitConstructorName(node))
}
func (w *WalkingVisitor) VisitRedirectingConstructorInvocation(node *RedirectingConstructorInvocation) interface{} {
	return w.descend(node, w.visitor.VisitRedirectingConstructorInvocation(node))
}
func (w *WalkingVisitor) VisitSuperConstructorInvocation(node *SuperConstructorInvocation) interface{} {
	return w.descend(node, w.visitor.VisitSuperConstructorInvocation(node))
}
func (w *WalkingVisitor) VisitEnumDeclaration(node *EnumDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitEnumDeclaration(node))
}
func (w *WalkingVisitor) VisitEnumConstantDeclaration(node *EnumConstantDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitEnumConstantDeclaration(node))
}
func (w *WalkingVisitor) VisitFieldDeclaration(node *FieldDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitFieldDeclaration(node))
}
func (w *WalkingVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitFunctionDeclaration(node))
}
func (w *WalkingVisitor) VisitFunctionTypeAlias(node *FunctionTypeAlias) interface{} {
	return w.descend(node, w.visitor.VisitFunctionTypeAlias(node))
}
func (w *WalkingVisitor) VisitMethodDeclaration(node *MethodDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitMethodDeclaration(node))
}
func (w *WalkingVisitor) VisitTopLevelVariableDeclaration(node *TopLevelVariableDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitTopLevelVariableDeclaration(node))
}
func (w *WalkingVisitor) VisitVariableDeclaration(node *VariableDeclaration) interface{} {
	return w.descend(node, w.visitor.VisitVariableDeclaration(node))
}
func (w *WalkingVisitor) VisitVariableDeclarationList(node *VariableDeclarationList) interface{} {
	return w.descend(node, w.visitor.VisitVariableDeclarationList(node))
}
func (w *WalkingVisitor) VisitDeclaredIdentifier(node *DeclaredIdentifier) interface{} {
	return w.descend(node, w.visitor.VisitDeclaredIdentifier(node))
}
func (w *WalkingVisitor) VisitTypeName(node *TypeName) interface{} {
	return w.descend(node, w.visitor.VisitTypeName(node))
}
func (w *WalkingVisitor) VisitTypeArgumentList(node *TypeArgumentList) interface{} {
	return w.descend(node, w.visitor.VisitTypeArgumentList(node))
}
func (w *WalkingVisitor) VisitTypeParameter(node *TypeParameter) interface{} {
	return w.descend(node, w.visitor.VisitTypeParameter(node))
}
func (w *WalkingVisitor) VisitTypeParameterList(node *TypeParameterList) interface{} {
	return w.descend(node, w.visitor.VisitTypeParameterList(node))
}
func (w *WalkingVisitor) VisitFormalParameterList(node *FormalParameterList) interface{} {
	return w.descend(node, w.visitor.VisitFormalParameterList(node))
}
func (w *WalkingVisitor) VisitSimpleFormalParameter(node *SimpleFormalParameter) interface{} {
	return w.descend(node, w.visitor.VisitSimpleFormalParameter(node))
}
func (w *WalkingVisitor) VisitFieldFormalParameter(node *FieldFormalParameter) interface{} {
	return w.descend(node, w.visitor.VisitFieldFormalParameter(node))
}
func (w *WalkingVisitor) VisitFunctionTypedFormalParameter(node *FunctionTypedFormalParameter) interface{} {
	return w.descend(node, w.visitor.VisitFunctionTypedFormalParameter(node))
}
func (w *WalkingVisitor) VisitDefaultFormalParameter(node *DefaultFormalParameter) interface{} {
	return w.descend(node, w.visitor.VisitDefaultFormalParameter(node))
}
func (w *WalkingVisitor) VisitCompilationUnit(node *CompilationUnit) interface{} {
	return w.descend(node, w.visitor.VisitCompilationUnit(node))
}
func (w *WalkingVisitor) VisitScriptTag(node *ScriptTag) interface{} {
	return w.descend(node, w.visitor.VisitScriptTag(node))
}
func (w *WalkingVisitor) VisitLibraryDirective(node *LibraryDirective) interface{} {
	return w.descend(node, w.visitor.VisitLibraryDirective(node))
}
func (w *WalkingVisitor) VisitImportDirective(node *ImportDirective) interface{} {
	return w.descend(node, w.visitor.VisitImportDirective(node))
}
func (w *WalkingVisitor) VisitExportDirective(node *ExportDirective) interface{} {
	return w.descend(node, w.visitor.VisitExportDirective(node))
}
func (w *WalkingVisitor) VisitPartDirective(node *PartDirective) interface{} {
	return w.descend(node, w.visitor.VisitPartDirective(node))
}
func (w *WalkingVisitor) VisitPartOfDirective(node *PartOfDirective) interface{} {
	return w.descend(node, w.visitor.VisitPartOfDirective(node))
}
func (w *WalkingVisitor) VisitShowCombinator(node *ShowCombinator) interface{} {
	return w.descend(node, w.visitor.VisitShowCombinator(node))
}
func (w *WalkingVisitor) VisitHideCombinator(node *HideCombinator) interface{} {
	return w.descend(node, w.visitor.VisitHideCombinator(node))
}

// Inspect traverses the tree rooted at node in depth-first source order,
// calling f for each node. If f returns false the children of that node are
// skipped.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) || !f(node) {
		return
	}
	for _, c := range Children(node) {
		Inspect(c, f)
	}
}

// NodeCounter tallies nodes by variant name.
type NodeCounter struct {
	counts map[string]int
	total  int
}

// NewNodeCounter creates an empty counter.
func NewNodeCounter() *NodeCounter {
	return &NodeCounter{counts: make(map[string]int)}
}

// Count adds every node of the tree rooted at node and returns the number
// added.
func (c *NodeCounter) Count(node Node) int {
	added := 0
	Inspect(node, func(n Node) bool {
		c.counts[NodeName(n)]++
		added++
		return true
	})
	c.total += added
	return added
}

// Total returns the number of nodes counted so far.
func (c *NodeCounter) Total() int { return c.total }

// Counts returns a copy of the per-variant tallies.
func (c *NodeCounter) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
