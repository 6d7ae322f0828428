package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkmj/mahjong"
	"hkmj/utils"
)

var (
	configFile string
	seed       int64
	matches    int
	difficulty int32
	minFan     int32
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hkmj",
	Short: "hkmj 港式麻将对局内核",
	Long:  `hkmj 港式麻将对局内核，simulate子命令跑全AI对局`,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "全AI自动对局，校验规则与结算",
}

func runSimulate(cmd *cobra.Command, args []string) {
	level := logrus.ErrorLevel
	if verbose {
		level = logrus.DebugLevel
	}
	utils.InitLogger(level, verbose)

	rule := loadRule()
	for i := 0; i < matches; i++ {
		matchRule := *rule
		if matchRule.Seed != 0 {
			matchRule.Seed += int64(i)
		}
		runMatch(i, &matchRule)
	}
}

func loadRule() *mahjong.Rule {
	rule := mahjong.NewRule()
	if configFile != "" {
		vp := viper.New()
		vp.SetConfigFile(configFile)
		if err := vp.ReadInConfig(); err != nil {
			logrus.Fatalf("config %s: %v", configFile, err)
		}
		rule.LoadRule(vp)
	}
	if simulateCmd.Flags().Changed("seed") {
		rule.Seed = seed
	}
	if simulateCmd.Flags().Changed("difficulty") {
		rule.Difficulty = mahjong.Difficulty(difficulty)
	}
	if simulateCmd.Flags().Changed("min-fan") {
		rule.MinFan = minFan
	}
	rule.AIDelay = 0
	return rule
}

func runMatch(index int, rule *mahjong.Rule) {
	game := mahjong.NewGame(rule, mahjong.NopSink{})
	game.EnableAutoPilot()
	if !game.StartMatch() {
		logrus.Errorf("match %d failed to start", index)
		return
	}
	game.ConfirmDice()

	// 定时器延迟为0，逐帧驱动直到终局
	const tickLimit = 1 << 20
	ticks := 0
	for !game.IsOver() {
		game.OnTick()
		ticks++
		if ticks > tickLimit {
			logrus.Errorf("match %d stalled after %d ticks", index, ticks)
			return
		}
	}

	scores := game.GetCurScores()
	fmt.Printf("match %d: %d rounds, scores %v\n", index, game.GetPlayedRounds(), scores)
}

func init() {
	simulateCmd.Run = runSimulate
	simulateCmd.Flags().StringVar(&configFile, "config", "", "规则配置文件")
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "随机种子，0为随机")
	simulateCmd.Flags().IntVar(&matches, "matches", 1, "模拟场数")
	simulateCmd.Flags().Int32Var(&difficulty, "difficulty", int32(mahjong.DifficultyMedium), "AI难度 0易 1中 2难")
	simulateCmd.Flags().Int32Var(&minFan, "min-fan", mahjong.DefaultMinFan, "起胡番")
	simulateCmd.Flags().BoolVar(&verbose, "verbose", false, "调试日志")
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
