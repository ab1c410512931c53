package seedcodec

// Preamble is the fixed instruction that opens every mutation prompt for target.
func Preamble(target string) string {
	return "### Input: ```Based on below hex " + target + " seed, mutate a new " + target +
		" seed. Make sure the example is complete and valid."
}

// BuildPrompt wraps the prompt-encoded seed in the instruction template.
func BuildPrompt(target, seed string) string {
	return Preamble(target) + " " + EncodeForPrompt(seed) + "```"
}
