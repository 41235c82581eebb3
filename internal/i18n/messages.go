// Package i18n holds the localised message set and picks one at startup.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	Usage          = "usage"
	VersionNotice  = "version.notice"
	Hint           = "interactive.hint"
	InvalidOneShot = "error.invalid.oneshot"
	InvalidPrompt  = "error.invalid.prompt"
	TooManyArgs    = "error.args"
	BadFlag        = "error.flag"
	BindFailed     = "error.bind"
	SendFailed     = "error.send"
	DataSent       = "probe.sent"
	DataReceived   = "probe.received"
	NoData         = "probe.nodata"
	Probing        = "tui.probing"
	SessionSummary = "tui.summary"
	TargetSummary  = "tui.target"
	QuitHint       = "tui.footer"
)

type translation struct {
	en string
	zh string
}

var translations = map[string]translation{
	Usage: {
		en: `Usage: dh-ping <IP:port>

Function:
  Sends a Dread Hunger UDP handshake packet to the specified
  <IP:port> to check server connectivity.

Options:
  -?, --help, help          Display this help information and exit
  -v, --version, version    Display the program version and exit
      --lang <auto|en|zh>   Select the display language
      --color <auto|always|never>
                            Control colored output
      --verbose             Log socket diagnostics to stderr

Description:
  If no <IP:port> is provided, the program will enter interactive mode.
  In this mode, you can repeatedly enter <IP:port> to check the
  connectivity of multiple server URIs.`,
		zh: `用法: dh-ping <IP:端口>

功能:
  发送 Dread Hunger UDP 握手包到指定的 <IP:端口>，以检测服务器的连通性。

选项:
  -?, --help, help          显示此帮助信息并退出
  -v, --version, version    显示程序的版本信息并退出
      --lang <auto|en|zh>   选择显示语言
      --color <auto|always|never>
                            控制彩色输出
      --verbose             将 socket 诊断信息输出到标准错误

说明:
  如果未提供 <IP:端口>，程序将进入交互性模式。
  在此模式下，您可以反复输入 <IP:端口> 以检测多个服务器 URI 的连通性。`,
	},
	VersionNotice: {
		en: "Ayrzo (c) 2024. Licensed under the GNU Lesser General Public License.\nProject Repository: %s",
		zh: "爱佐 (c) 2024，根据 GNU 宽通用公共许可证 (LGPL) 授权。\n开源项目链接: %s",
	},
	Hint: {
		en: "Enter IP:port to check connectivity of Dread Hunger server, e.g., 127.0.0.1:7777\nEnter 'exit' to quit",
		zh: "输入 IP:端口 查询 Dread Hunger 服务器端口连通性，例如：127.0.0.1:7777\n输入 'exit' 退出",
	},
	InvalidOneShot: {
		en: "Error: Invalid IP:port format. Run `dh-ping help` for more help.",
		zh: "错误: 无效的 IP:端口 格式。执行 `dh-ping help` 获取更多帮助。",
	},
	InvalidPrompt: {
		en: "Error: Invalid IP:port format. Correct example: 127.0.0.1:7777",
		zh: "错误: 无效的 IP:端口 格式。正确示例：127.0.0.1:7777",
	},
	TooManyArgs: {
		en: "Error: Too many arguments. Run `dh-ping help` for more help.",
		zh: "错误: 参数数量过多。执行 `dh-ping help` 获取更多帮助。",
	},
	BadFlag: {
		en: "Error: %s. Run `dh-ping help` for more help.",
		zh: "错误: %s。执行 `dh-ping help` 获取更多帮助。",
	},
	BindFailed: {
		en: "Failed to bind socket: %s",
		zh: "绑定 socket 失败: %s",
	},
	SendFailed: {
		en: "Failed to send data: %s",
		zh: "数据发送失败: %s",
	},
	DataSent: {
		en: "Data sent to %s",
		zh: "数据已发送到 %s",
	},
	DataReceived: {
		en: "Received data (%d bytes):",
		zh: "收到数据 (%d 字节):",
	},
	NoData: {
		en: "[No data received]",
		zh: "[未收到任何数据]",
	},
	Probing: {
		en: "Waiting for a reply from %s",
		zh: "正在等待 %s 的回复",
	},
	SessionSummary: {
		en: "Probes: %d  Replied: %d  Silent: %d  Failed: %d",
		zh: "探测: %d  有回复: %d  无回复: %d  失败: %d",
	},
	TargetSummary: {
		en: "Avg RTT: %s  Top target: %s (%d probes, last RTT %s)",
		zh: "平均往返: %s  最常探测: %s (%d 次, 最近往返 %s)",
	},
	QuitHint: {
		en: "Press Ctrl+C to quit.",
		zh: "按 Ctrl+C 退出。",
	},
}

// Supported lists the display languages in preference order.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var messages = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, tr := range translations {
		if err := b.SetString(language.English, key, tr.en); err != nil {
			panic(err)
		}
		if err := b.SetString(language.SimplifiedChinese, key, tr.zh); err != nil {
			panic(err)
		}
	}
	return b
}()

// Messages is the message set for one display language.
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// New resolves the message set for tag.
func New(tag language.Tag) *Messages {
	if isChinese(tag) {
		tag = language.SimplifiedChinese
	} else {
		tag = language.English
	}
	return &Messages{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Tag returns the resolved display language.
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Get formats the message stored under key.
func (m *Messages) Get(key string, args ...any) string {
	return m.printer.Sprintf(key, args...)
}
