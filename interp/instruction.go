package interp

// instruction is a dispatch table entry.
type instruction struct {
	family error // Joined to every error the handler returns.
	arity  int   // Minimum number of operands.
	run    func(m *Machine, op string, args []string) error
}

// instructions maps each mnemonic to its handler. Label definitions and
// label jumps are recognised by their first character instead.
var instructions = map[string]instruction{
	// Stack push.
	"[":  {ErrStack, 1, (*Machine).opPush},
	"]":  {ErrStack, 1, (*Machine).opPush},
	"[.": {ErrStack, 0, (*Machine).opPush},
	"].": {ErrStack, 0, (*Machine).opPush},
	"'":  {ErrStack, 1, (*Machine).opPushString},

	// Stack transfer.
	"\\/": {ErrStack, 0, (*Machine).opTransfer},
	"/\\": {ErrStack, 0, (*Machine).opTransfer},
	")(":  {ErrStack, 0, (*Machine).opTransfer},
	"()":  {ErrStack, 0, (*Machine).opTransfer},

	// Output.
	"~l": {ErrOutput, 0, (*Machine).opPrint},
	"~r": {ErrOutput, 0, (*Machine).opPrint},
	"~":  {ErrOutput, 1, (*Machine).opPrint},

	// Conditional branch.
	"!": {ErrCondition, 4, (*Machine).opCondition},

	// Arithmetic.
	"+":      {ErrArithmetic, 3, (*Machine).opArithmetic},
	"-":      {ErrArithmetic, 3, (*Machine).opArithmetic},
	"*":      {ErrArithmetic, 3, (*Machine).opArithmetic},
	":":      {ErrArithmetic, 3, (*Machine).opArithmetic},
	"%":      {ErrArithmetic, 3, (*Machine).opArithmetic},
	"concat": {ErrArithmetic, 3, (*Machine).opArithmetic},

	// Bitwise.
	"^": {ErrBitwise, 3, (*Machine).opBitwise},
	"<": {ErrBitwise, 3, (*Machine).opBitwise},
	">": {ErrBitwise, 3, (*Machine).opBitwise},
	"|": {ErrBitwise, 3, (*Machine).opBitwise},
	"&": {ErrBitwise, 3, (*Machine).opBitwise},

	// Trigonometric.
	"sin":   {ErrTrigonometric, 2, (*Machine).opTrigonometric},
	"cos":   {ErrTrigonometric, 2, (*Machine).opTrigonometric},
	"tan":   {ErrTrigonometric, 2, (*Machine).opTrigonometric},
	"atan":  {ErrTrigonometric, 2, (*Machine).opTrigonometric},
	"sqrt":  {ErrTrigonometric, 2, (*Machine).opTrigonometric},
	"atan2": {ErrTrigonometric, 3, (*Machine).opTrigonometric},
	"pow":   {ErrTrigonometric, 3, (*Machine).opTrigonometric},

	// Base conversion.
	"BD": {ErrConversion, 2, (*Machine).opBinaryToDecimal},
	"DB": {ErrConversion, 2, (*Machine).opDecimalToBinary},

	// Random.
	"rand": {ErrRandom, 1, (*Machine).opRandom},

	// Alias management.
	"#": {ErrAlias, 2, (*Machine).opAliasDefine},
	";": {ErrAlias, 1, (*Machine).opAliasDelete},

	// Delay.
	"$": {ErrDelay, 1, (*Machine).opDelay},

	// Graphics.
	"WC":      {ErrGraphics, 3, (*Machine).opWindowCreate},
	"WR":      {ErrGraphics, 0, (*Machine).opWindow},
	"WU":      {ErrGraphics, 0, (*Machine).opWindow},
	"WNL":     {ErrGraphics, 0, (*Machine).opWindow},
	"WFPS":    {ErrGraphics, 1, (*Machine).opWindow},
	"GCS":     {ErrGraphics, 3, (*Machine).opPixelGet},
	"SCS":     {ErrGraphics, 3, (*Machine).opPixelSet},
	"#WRECT":  {ErrGraphics, 4, (*Machine).opRect},
	"#WRECTC": {ErrGraphics, 5, (*Machine).opRect},
	"WBC":     {ErrGraphics, 0, (*Machine).opUnsupported},
	"WSA2S":   {ErrGraphics, 0, (*Machine).opUnsupported},
}
