package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyUnnamed = "person.unnamed"
	keyRules   = "rules.summary"
)

func init() {
	en := language.English
	message.SetString(en, keyUnnamed, "(unnamed)")
	message.SetString(en, keyRules, "Base salary %s, tiered commission on profit, %d%% tax on commission, %s social insurance and fixed cost. For demonstration only.")

	zh := language.Chinese
	message.SetString(zh, keyUnnamed, "未填写")
	message.SetString(zh, keyRules, "基本工资 %s 元，利润阶梯提成，个税 %d%%，社保+固定成本 %s 元。仅供演示，实际以公司政策为准。")
}
