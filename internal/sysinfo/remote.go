package sysinfo

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// DefaultSSHPort 是未指定端口时的 SSH 端口。
const DefaultSSHPort = 22

const dialTimeout = 10 * time.Second

// RemoteCollector 通过 SSH 在远程主机上执行一组固定命令并解析结果。
// 每次 Collect 建立一条连接，无论成功失败都在返回前关闭。
type RemoteCollector struct {
	Host    string
	Port    int
	User    string // 为空时取本机用户名
	KeyFile string // 为空时尝试 ~/.ssh/id_ed25519、~/.ssh/id_rsa
}

// probe 是一条远程采集命令及把输出写入快照的解析逻辑。
type probe struct {
	name     string
	cmd      string
	optional bool // 允许失败/空输出（如 /etc/os-release 缺失）
	fill     func(*Snapshot, string) error
}

// Collect 建立 SSH 通道，依次执行采集命令并解析为快照。
// 通道建立失败返回 ErrConnection，命令执行或解析失败返回 ErrCollection。
func (c *RemoteCollector) Collect(ctx context.Context) (*Snapshot, error) {
	cfg, err := c.clientConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	port := c.Port
	if port == 0 {
		port = DefaultSSHPort
	}
	addr := net.JoinHostPort(c.Host, strconv.Itoa(port))

	client, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnection, addr, err)
	}
	defer client.Close()

	snap := &Snapshot{Now: time.Now()}
	probes := remoteProbes()
	pb := newProbeProgressBar(len(probes))

	for _, p := range probes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCollection, err)
		}

		out, err := runCommand(client, p.cmd)
		if err != nil {
			if p.optional {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrCollection, p.name, err)
		}
		if err := p.fill(snap, out); err != nil {
			if p.optional {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrCollection, p.name, err)
		}

		if pb != nil {
			_ = pb.Add(1)
		}
	}
	if pb != nil {
		_ = pb.Finish()
	}

	snap.BootTime = snap.Now.Add(-snap.Uptime)
	snap.CPULoad = loadPercent(snap.loadAvg, snap.CPUCores)

	return snap, nil
}

// runCommand 在新会话中执行一条命令并返回修剪后的输出。
func runCommand(client *ssh.Client, cmd string) (string, error) {
	session, err := client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	out, err := session.Output(cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// clientConfig 组装 SSH 客户端配置（公钥认证）。
func (c *RemoteCollector) clientConfig() (*ssh.ClientConfig, error) {
	user := c.User
	if user == "" {
		user = os.Getenv("USER")
	}
	if user == "" {
		return nil, fmt.Errorf("remote user not specified")
	}

	keyFile, err := c.resolveKeyFile()
	if err != nil {
		return nil, err
	}

	keyData, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("read key %s: %w", keyFile, err)
	}
	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("parse key %s: %w", keyFile, err)
	}

	return &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{ssh.PublicKeys(signer)},
		// 一次性诊断工具，不维护 known_hosts。
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	}, nil
}

// resolveKeyFile 确定私钥路径：显式指定优先，否则尝试常见默认位置。
func (c *RemoteCollector) resolveKeyFile() (string, error) {
	if c.KeyFile != "" {
		return c.KeyFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	for _, name := range []string{"id_ed25519", "id_rsa"} {
		path := filepath.Join(home, ".ssh", name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no SSH key found (use --key to specify one)")
}

// newProbeProgressBar 创建远程采集进度条，仅在终端环境下显示。
func newProbeProgressBar(total int) *progressbar.ProgressBar {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("collecting metrics"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

// remoteProbes 返回远程采集命令表（面向 Linux 的 procfs 与 POSIX 工具）。
func remoteProbes() []probe {
	return []probe{
		{
			name: "hostname",
			cmd:  "hostname",
			fill: func(s *Snapshot, out string) error {
				s.Hostname = out
				return nil
			},
		},
		{
			name: "uname",
			cmd:  "uname -s -r -m",
			fill: func(s *Snapshot, out string) error {
				return parseUname(s, out)
			},
		},
		{
			name:     "os-release",
			cmd:      "cat /etc/os-release",
			optional: true,
			fill: func(s *Snapshot, out string) error {
				if pretty := parseOSRelease(out); pretty != "" {
					s.OS = pretty
				}
				return nil
			},
		},
		{
			name: "uptime",
			cmd:  "cat /proc/uptime",
			fill: func(s *Snapshot, out string) error {
				d, err := parseUptimeSeconds(out)
				if err != nil {
					return err
				}
				s.Uptime = d
				return nil
			},
		},
		{
			name: "cpu-model",
			cmd:  `grep -m1 "model name" /proc/cpuinfo`,
			fill: func(s *Snapshot, out string) error {
				model, err := parseCPUModel(out)
				if err != nil {
					return err
				}
				s.CPUName = CleanCPUName(model)
				return nil
			},
		},
		{
			name: "cpu-cores",
			cmd:  "nproc",
			fill: func(s *Snapshot, out string) error {
				n, err := strconv.Atoi(out)
				if err != nil || n <= 0 {
					return fmt.Errorf("bad core count %q", out)
				}
				s.CPUCores = n
				return nil
			},
		},
		{
			name: "loadavg",
			cmd:  "cat /proc/loadavg",
			fill: func(s *Snapshot, out string) error {
				load, err := parseLoadAvg(out)
				if err != nil {
					return err
				}
				s.loadAvg = load
				return nil
			},
		},
		{
			name: "memory",
			cmd:  `grep -E "^(MemTotal|MemAvailable):" /proc/meminfo`,
			fill: func(s *Snapshot, out string) error {
				totalMB, freeMB, err := parseMeminfo(out)
				if err != nil {
					return err
				}
				s.MemTotalMB, s.MemFreeMB = totalMB, freeMB
				return nil
			},
		},
		{
			name: "disk",
			cmd:  "df -kP /",
			fill: func(s *Snapshot, out string) error {
				totalGB, freeGB, err := parseDF(out)
				if err != nil {
					return err
				}
				s.DiskTotalGB, s.DiskFreeGB = totalGB, freeGB
				return nil
			},
		},
		{
			name: "processes",
			cmd:  "ps -e | wc -l",
			fill: func(s *Snapshot, out string) error {
				n, err := strconv.Atoi(out)
				if err != nil {
					return fmt.Errorf("bad process count %q", out)
				}
				// ps 输出包含表头行
				if n > 0 {
					n--
				}
				s.Procs = n
				return nil
			},
		},
		{
			name:     "shell",
			cmd:      `echo "$SHELL"`,
			optional: true,
			fill: func(s *Snapshot, out string) error {
				s.Shell = out
				return nil
			},
		},
		{
			name: "user",
			cmd:  "whoami",
			fill: func(s *Snapshot, out string) error {
				s.User = out
				return nil
			},
		},
	}
}

// parseUname 解析 "Linux 6.1.0-18-amd64 x86_64"。
func parseUname(s *Snapshot, out string) error {
	fields := strings.Fields(out)
	if len(fields) != 3 {
		return fmt.Errorf("unexpected uname output %q", out)
	}
	s.OS = fields[0]
	s.Kernel = fields[1]
	s.Arch = fields[2]
	return nil
}

// parseOSRelease 从 /etc/os-release 内容中提取 PRETTY_NAME。
func parseOSRelease(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "PRETTY_NAME=") {
			continue
		}
		return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), `"`)
	}
	return ""
}

// parseUptimeSeconds 解析 /proc/uptime 首字段（秒）。
func parseUptimeSeconds(out string) (time.Duration, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime output")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad uptime %q", fields[0])
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// parseCPUModel 解析 /proc/cpuinfo 的 "model name : xxx" 行。
func parseCPUModel(out string) (string, error) {
	_, model, found := strings.Cut(out, ":")
	if !found {
		return "", fmt.Errorf("unexpected cpuinfo line %q", out)
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return "", fmt.Errorf("empty cpu model in %q", out)
	}
	return model, nil
}

// parseLoadAvg 解析 /proc/loadavg 首字段（1 分钟负载）。
func parseLoadAvg(out string) (float64, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty loadavg output")
	}
	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad loadavg %q", fields[0])
	}
	return load, nil
}

// parseMeminfo 解析 MemTotal/MemAvailable 行（kB），换算为 MB。
func parseMeminfo(out string) (totalMB, freeMB uint64, err error) {
	var totalKB, freeKB uint64
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		kb, parseErr := strconv.ParseUint(fields[1], 10, 64)
		if parseErr != nil {
			return 0, 0, fmt.Errorf("bad meminfo line %q", line)
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB = kb
		case "MemAvailable:":
			freeKB = kb
		}
	}
	if totalKB == 0 {
		return 0, 0, fmt.Errorf("MemTotal not found in %q", out)
	}
	return totalKB / 1024, freeKB / 1024, nil
}

// parseDF 解析 df -kP 输出（1K 块），换算为 GB。
func parseDF(out string) (totalGB, freeGB float64, err error) {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return 0, 0, fmt.Errorf("unexpected df output %q", out)
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 4 {
		return 0, 0, fmt.Errorf("unexpected df line %q", lines[1])
	}
	totalKB, err1 := strconv.ParseFloat(fields[1], 64)
	freeKB, err2 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("bad df sizes in %q", lines[1])
	}
	const kbPerGB = 1024 * 1024
	return totalKB / kbPerGB, freeKB / kbPerGB, nil
}

// loadPercent 把 1 分钟负载换算为百分比（按核数归一，截断并钳制到 [0,100]）。
func loadPercent(load float64, cores int) int {
	if cores <= 0 {
		cores = 1
	}
	return clampPercent(int(load / float64(cores) * 100))
}
