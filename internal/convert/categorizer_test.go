package convert

import "testing"

func categorizeSrc(src string) CategorizedBlock {
	return categorize(RawBlock{Src: src, Span: zeroSpan()})
}

func wantKind(t *testing.T, src string, want BlockKind) {
	t.Helper()
	got := categorizeSrc(src)
	if got.Kind != want {
		t.Fatalf("categorize(%q): got kind %v, want %v", src, got.Kind, want)
	}
	if got.Block.Src != src {
		t.Fatalf("categorize(%q): src mutated to %q", src, got.Block.Src)
	}
}

func TestCategorizeText(t *testing.T) {
	wantKind(t, "Hello World [click here](https://example.com) - it's **cool**!", BlockTextKind)
}

func TestCategorizeCode(t *testing.T) {
	wantKind(t, "```js\nconsole.log('test');\n```", BlockCodeKind)
}

func TestCategorizeFaultyCodeAsText(t *testing.T) {
	wantKind(t, "` ``js\nconsole.log('test');\n```", BlockTextKind)
}

func TestCategorizeQuote(t *testing.T) {
	wantKind(t, "> Hello World", BlockQuoteKind)
}

func TestCategorizeTable(t *testing.T) {
	wantKind(t, "| First Header  | Second Header |\n| ------------- | ------------- |\n| Content Cell  | Content Cell  |", BlockTableKind)
}

func TestCategorizeOrderedList(t *testing.T) {
	wantKind(t, "1. First item\n2. Second item\n3. Third item", BlockListKind)
}

func TestCategorizeUnorderedListMinus(t *testing.T) {
	wantKind(t, "- First item\n- Second item\n- Third item", BlockListKind)
}

func TestCategorizeUnorderedListPlus(t *testing.T) {
	wantKind(t, "+ First item\n+ Second item\n+ Third item", BlockListKind)
}

func TestCategorizeUnorderedListStar(t *testing.T) {
	wantKind(t, "* First item\n* Second item\n* Third item", BlockListKind)
}

func TestCategorizeNestedList(t *testing.T) {
	wantKind(t, "- First item\n    - Second item\n    - Third item", BlockListKind)
}

func TestCategorizeListWithFirstItemIndentedAsText(t *testing.T) {
	wantKind(t, "   - First item\n    - Second item\n    - Third item", BlockTextKind)
}

func TestCategorizeHorizontalRuleMinus(t *testing.T) {
	wantKind(t, "---", BlockHorizontalRuleKind)
}

func TestCategorizeHorizontalRuleStar(t *testing.T) {
	wantKind(t, "***", BlockHorizontalRuleKind)
}

func TestCategorizeFaultyHorizontalRuleWithStarsAsText(t *testing.T) {
	wantKind(t, "***Some text***", BlockTextKind)
}

func TestCategorizeHorizontalRulePlus(t *testing.T) {
	wantKind(t, "+++", BlockHorizontalRuleKind)
}

func TestCategorizeHorizontalRuleUnderscore(t *testing.T) {
	wantKind(t, "___", BlockHorizontalRuleKind)
}

func TestCategorizeHorizontalRuleLotsOfChars(t *testing.T) {
	wantKind(t, "--------------------------", BlockHorizontalRuleKind)
}

func TestCategorizeHorizontalRuleLessThanThreeCharsAsText(t *testing.T) {
	wantKind(t, "--", BlockTextKind)
}

func TestCategorizeHeading(t *testing.T) {
	wantKind(t, "# This is a heading", BlockHeadingKind)
}

func TestCategorizeImage(t *testing.T) {
	wantKind(t, "![This is an image](https://example.com/image.png)", BlockImageKind)
}

func TestCategorizeImageWithEmptyTag(t *testing.T) {
	wantKind(t, "![](https://example.com/image.png)", BlockImageKind)
}

func TestCategorizeFaultyImageAsText(t *testing.T) {
	wantKind(t, "!(https://example.com/image.png)", BlockTextKind)
}

func TestCategorizeFaultyImageAsText2(t *testing.T) {
	wantKind(t, "!", BlockTextKind)
}

func TestCategorizeFaultyImageAsText3(t *testing.T) {
	wantKind(t, "![tag]", BlockTextKind)
}

func TestCategorizeImageFollowedByTextAsText(t *testing.T) {
	wantKind(t, "![tag](of_image_src) hello world", BlockTextKind)
}

func TestCategorizeTextStartingWithFunction(t *testing.T) {
	wantKind(t, "#fn(test) Hello World", BlockTextKind)
}

func TestCategorizeFunctionWithoutNameAsText(t *testing.T) {
	wantKind(t, "#(test)", BlockTextKind)
}

func TestCategorizeFunctionWithoutParamsFollowedByTextAsText(t *testing.T) {
	wantKind(t, "#break and some text", BlockTextKind)
}

func TestCategorizeFunction(t *testing.T) {
	wantKind(t, "#image(\n    width: 100px, \n    height: 100px, \n    src: \"test.jpg\"\n)", BlockFunctionKind)
}

func TestCategorizeFunctionWithoutParams(t *testing.T) {
	wantKind(t, "#break", BlockFunctionKind)
}
