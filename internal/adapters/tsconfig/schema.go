package tsconfig

// optionKind describes the value shape expected for a compiler option.
type optionKind uint8

const (
	kindBool optionKind = iota
	kindString
	kindNumber
	kindEnum
	kindPath
	kindStringList
	kindPathList
	kindPathMap
)

// optionSpec describes one recognized compiler option.
type optionSpec struct {
	Kind optionKind
	// Enum lists the allowed values for kindEnum options, lower-cased.
	Enum []string
}

// typeName returns the human-readable type for diagnostics.
func (s optionSpec) typeName() string {
	switch s.Kind {
	case kindBool:
		return "boolean"
	case kindNumber:
		return "number"
	case kindStringList, kindPathList:
		return "list of strings"
	case kindPathMap:
		return "object mapping patterns to lists of strings"
	case kindString, kindEnum, kindPath:
		return "string"
	default:
		return "string"
	}
}

// compilerOptionSchema lists the compiler options the validator recognizes.
// Path-valued options are resolved absolute against the config's directory;
// enum values are matched case-insensitively and normalized to lower case.
var compilerOptionSchema = map[string]optionSpec{
	"allowJs":                          {Kind: kindBool},
	"allowSyntheticDefaultImports":     {Kind: kindBool},
	"allowUnreachableCode":             {Kind: kindBool},
	"allowUnusedLabels":                {Kind: kindBool},
	"alwaysStrict":                     {Kind: kindBool},
	"baseUrl":                          {Kind: kindPath},
	"checkJs":                          {Kind: kindBool},
	"composite":                        {Kind: kindBool},
	"declaration":                      {Kind: kindBool},
	"declarationDir":                   {Kind: kindPath},
	"declarationMap":                   {Kind: kindBool},
	"downlevelIteration":               {Kind: kindBool},
	"emitDecoratorMetadata":            {Kind: kindBool},
	"esModuleInterop":                  {Kind: kindBool},
	"experimentalDecorators":           {Kind: kindBool},
	"forceConsistentCasingInFileNames": {Kind: kindBool},
	"importHelpers":                    {Kind: kindBool},
	"incremental":                      {Kind: kindBool},
	"inlineSourceMap":                  {Kind: kindBool},
	"inlineSources":                    {Kind: kindBool},
	"isolatedModules":                  {Kind: kindBool},
	"jsx": {Kind: kindEnum, Enum: []string{
		"preserve", "react", "react-jsx", "react-jsxdev", "react-native",
	}},
	"lib":                  {Kind: kindStringList},
	"maxNodeModuleJsDepth": {Kind: kindNumber},
	"module": {Kind: kindEnum, Enum: []string{
		"none", "commonjs", "amd", "umd", "system", "es6", "es2015", "es2020",
		"es2022", "esnext", "node16", "nodenext", "preserve",
	}},
	"moduleResolution": {Kind: kindEnum, Enum: []string{
		"classic", "node", "node10", "node16", "nodenext", "bundler",
	}},
	"newLine":                      {Kind: kindEnum, Enum: []string{"crlf", "lf"}},
	"noEmit":                       {Kind: kindBool},
	"noEmitOnError":                {Kind: kindBool},
	"noFallthroughCasesInSwitch":   {Kind: kindBool},
	"noImplicitAny":                {Kind: kindBool},
	"noImplicitOverride":           {Kind: kindBool},
	"noImplicitReturns":            {Kind: kindBool},
	"noImplicitThis":               {Kind: kindBool},
	"noUncheckedIndexedAccess":     {Kind: kindBool},
	"noUnusedLocals":               {Kind: kindBool},
	"noUnusedParameters":           {Kind: kindBool},
	"outDir":                       {Kind: kindPath},
	"outFile":                      {Kind: kindPath},
	"paths":                        {Kind: kindPathMap},
	"resolveJsonModule":            {Kind: kindBool},
	"rootDir":                      {Kind: kindPath},
	"rootDirs":                     {Kind: kindPathList},
	"skipLibCheck":                 {Kind: kindBool},
	"sourceMap":                    {Kind: kindBool},
	"sourceRoot":                   {Kind: kindString},
	"strict":                       {Kind: kindBool},
	"strictBindCallApply":          {Kind: kindBool},
	"strictFunctionTypes":          {Kind: kindBool},
	"strictNullChecks":             {Kind: kindBool},
	"strictPropertyInitialization": {Kind: kindBool},
	"target": {Kind: kindEnum, Enum: []string{
		"es3", "es5", "es6", "es2015", "es2016", "es2017", "es2018", "es2019",
		"es2020", "es2021", "es2022", "es2023", "esnext",
	}},
	"tsBuildInfoFile":         {Kind: kindPath},
	"typeRoots":               {Kind: kindPathList},
	"types":                   {Kind: kindStringList},
	"useDefineForClassFields": {Kind: kindBool},
	"verbatimModuleSyntax":    {Kind: kindBool},
}

// topLevelSchema lists the keys allowed at the top of a config document.
var topLevelSchema = map[string]struct{}{
	"compilerOptions": {},
	"compileOnSave":   {},
	"exclude":         {},
	"extends":         {},
	"files":           {},
	"include":         {},
	"references":      {},
	"typeAcquisition": {},
	"watchOptions":    {},
}
