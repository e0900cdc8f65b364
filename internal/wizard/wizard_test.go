package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/j0kz/mcp-wizard/internal/validator"
	"github.com/j0kz/mcp-wizard/pkg/models"
)

type mocks struct {
	Editors   *MockEditorDetector
	Project   *MockProjectDetector
	Tests     *MockTestFrameworkDetector
	Generator *MockGenerator
	Validator *MockValidator
	Installer *MockInstaller
	Writer    *MockWriter
	Prompter  *MockPrompter
}

func newWizard(t *testing.T) (*Wizard, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		Editors:   NewMockEditorDetector(ctrl),
		Project:   NewMockProjectDetector(ctrl),
		Tests:     NewMockTestFrameworkDetector(ctrl),
		Generator: NewMockGenerator(ctrl),
		Validator: NewMockValidator(ctrl),
		Installer: NewMockInstaller(ctrl),
		Writer:    NewMockWriter(ctrl),
		Prompter:  NewMockPrompter(ctrl),
	}
	w := New(Deps{
		Editors:       m.Editors,
		Project:       m.Project,
		TestFramework: m.Tests,
		Generator:     m.Generator,
		Validator:     m.Validator,
		Installer:     m.Installer,
		Writer:        m.Writer,
		Prompter:      m.Prompter,
	})
	return w, m
}

var reactProject = models.ProjectInfo{
	Language:       models.LanguageTypeScript,
	Framework:      "react",
	PackageManager: models.PackageManagerPNPM,
	HasTests:       true,
}

func (m mocks) expectDetect() {
	m.Editors.EXPECT().DetectEditor(gomock.Any()).Return(models.EditorCursor, nil)
	m.Project.EXPECT().DetectProject(gomock.Any()).Return(reactProject, nil)
	m.Tests.EXPECT().DetectTestFramework(gomock.Any()).Return(models.TestFrameworkVitest, nil)
}

func cursorConfig() models.GeneratedConfig {
	cfg := models.NewGeneratedConfig(models.KeyMCPServers)
	cfg.Servers["smart-reviewer"] = models.MCPServer{Command: "npx", Args: []string{"@j0kz/smart-reviewer-mcp@^1.0.0"}}
	return cfg
}

func TestDetect_FallsBackOnErrors(t *testing.T) {
	w, m := newWizard(t)
	m.Editors.EXPECT().DetectEditor(gomock.Any()).Return(models.Editor(""), errors.New("boom"))
	m.Project.EXPECT().DetectProject(gomock.Any()).Return(models.ProjectInfo{}, errors.New("invalid package.json"))
	m.Tests.EXPECT().DetectTestFramework(gomock.Any()).Return(models.TestFrameworkNone, errors.New("boom"))

	d := w.Detect(context.Background())

	assert.Equal(t, models.Editor(""), d.Editor)
	assert.Equal(t, models.UnknownProject(), d.Project)
	assert.Equal(t, models.TestFrameworkNone, d.TestFramework)
}

func TestGatherSelections_FromArgs(t *testing.T) {
	w, _ := newWizard(t)
	detected := models.Detected{TestFramework: models.TestFrameworkJest}

	s, err := w.GatherSelections(context.Background(), Args{
		Editor: "Cursor",
		MCPs:   " smart-reviewer, ,test-generator,smart-reviewer ",
	}, detected)

	require.NoError(t, err)
	assert.Equal(t, models.EditorCursor, s.Editor)
	assert.Equal(t, []string{"smart-reviewer", "test-generator"}, s.MCPs)
	assert.Equal(t, models.Preferences{
		ReviewSeverity:  models.SeverityModerate,
		TestFramework:   models.TestFrameworkJest,
		InstallGlobally: true,
	}, s.Preferences)
}

func TestGatherSelections_Prompts(t *testing.T) {
	w, m := newWizard(t)
	detected := models.Detected{Editor: models.EditorWindsurf, Project: reactProject, TestFramework: models.TestFrameworkVitest}

	m.Prompter.EXPECT().SelectEditor(gomock.Any(), models.EditorWindsurf).Return(models.EditorWindsurf, nil)
	m.Prompter.EXPECT().
		SelectMCPs(gomock.Any(), []string{"smart-reviewer", "security-scanner", "architecture-analyzer", "test-generator"}).
		Return([]string{"smart-reviewer", "smart-reviewer", "test-generator"}, nil)
	m.Prompter.EXPECT().
		Preferences(gomock.Any(), models.Preferences{
			ReviewSeverity:  models.SeverityModerate,
			TestFramework:   models.TestFrameworkVitest,
			InstallGlobally: true,
		}).
		Return(models.Preferences{InstallGlobally: false}, nil)

	s, err := w.GatherSelections(context.Background(), Args{}, detected)

	require.NoError(t, err)
	assert.Equal(t, models.EditorWindsurf, s.Editor)
	assert.Equal(t, []string{"smart-reviewer", "test-generator"}, s.MCPs)
	assert.Equal(t, models.SeverityModerate, s.Preferences.ReviewSeverity, "severity defaults to moderate")
	assert.Equal(t, models.TestFrameworkVitest, s.Preferences.TestFramework, "detected framework wins over empty answer")
	assert.False(t, s.Preferences.InstallGlobally)
}

func TestGatherSelections_EditorFlagOnly(t *testing.T) {
	w, m := newWizard(t)

	m.Prompter.EXPECT().SelectMCPs(gomock.Any(), gomock.Any()).Return([]string{"db-schema"}, nil)
	m.Prompter.EXPECT().Preferences(gomock.Any(), gomock.Any()).
		Return(models.Preferences{ReviewSeverity: models.SeverityStrict, InstallGlobally: true}, nil)

	s, err := w.GatherSelections(context.Background(), Args{Editor: "roo"}, models.Detected{Project: models.UnknownProject()})

	require.NoError(t, err)
	assert.Equal(t, models.EditorRoo, s.Editor)
	assert.Equal(t, models.SeverityStrict, s.Preferences.ReviewSeverity)
}

func TestGatherSelections_SeverityArg(t *testing.T) {
	w, _ := newWizard(t)

	s, err := w.GatherSelections(context.Background(), Args{
		Editor:   "qoder",
		MCPs:     "orchestrator",
		Severity: models.SeverityStrict,
	}, models.Detected{})

	require.NoError(t, err)
	assert.Equal(t, models.SeverityStrict, s.Preferences.ReviewSeverity)
}

func TestGatherSelections_Cancelled(t *testing.T) {
	w, m := newWizard(t)
	m.Prompter.EXPECT().SelectEditor(gomock.Any(), gomock.Any()).Return(models.Editor(""), ErrCancelled)

	_, err := w.GatherSelections(context.Background(), Args{}, models.Detected{})

	assert.ErrorIs(t, err, ErrCancelled)
}

func TestRun_Completed(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	cfg := cursorConfig()
	args := Args{Editor: "cursor", MCPs: "smart-reviewer", Verbose: true}

	gomock.InOrder(
		m.Validator.EXPECT().
			Validate(gomock.Any(), gomock.Any(), gomock.Any(), validator.Options{}).
			Return(nil),
		m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cfg, nil),
		m.Installer.EXPECT().Install(gomock.Any(), []string{"smart-reviewer"}, true).Return(nil),
		m.Writer.EXPECT().Write(cfg, models.EditorCursor, "", false).Return("/home/u/.cursor/mcp_config.json", nil),
	)

	res, err := w.Run(context.Background(), args)

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "/home/u/.cursor/mcp_config.json", res.Path)
	assert.Equal(t, models.EditorCursor, res.Detected.Editor)
	assert.Equal(t, models.TestFrameworkVitest, res.Selections.Preferences.TestFramework)
	assert.Empty(t, res.Backup)
}

func TestRun_DryRunSkipsInstallAndWrite(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	cfg := cursorConfig()

	m.Validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.Writer.EXPECT().Path(models.EditorCursor, "/tmp/out.json").Return("/tmp/out.json", nil)
	m.Writer.EXPECT().Diff("/tmp/out.json", cfg).Return("+{\n", nil)
	m.Installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.Writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := w.Run(context.Background(), Args{Editor: "cursor", MCPs: "smart-reviewer", Output: "/tmp/out.json", DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, StatusDryRun, res.Status)
	assert.Equal(t, "+{\n", res.Diff)
	assert.Equal(t, cfg, res.Config)
}

func TestRun_DeclineAborts(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	issues := []string{"No MCP tools selected."}

	m.Prompter.EXPECT().SelectMCPs(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.Prompter.EXPECT().Preferences(gomock.Any(), gomock.Any()).Return(models.Preferences{InstallGlobally: true}, nil)
	m.Validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(issues)
	m.Prompter.EXPECT().Confirm(gomock.Any(), issues).Return(false, nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

	res, err := w.Run(context.Background(), Args{Editor: "cursor"})

	require.NoError(t, err)
	assert.Equal(t, StatusAborted, res.Status)
	assert.Equal(t, issues, res.Issues)
}

func TestRun_ConfirmProceeds(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	cfg := cursorConfig()
	issues := []string{"Node.js 18 or newer is required (found v16.0.0)."}

	m.Validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(issues)
	m.Prompter.EXPECT().Confirm(gomock.Any(), issues).Return(true, nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.Installer.EXPECT().Install(gomock.Any(), gomock.Any(), false).Return(nil)
	m.Writer.EXPECT().Write(cfg, models.EditorCursor, "", false).Return("/x", nil)

	res, err := w.Run(context.Background(), Args{Editor: "cursor", MCPs: "smart-reviewer"})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, issues, res.Issues)
}

func TestRun_ForceBacksUpBeforeWrite(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	cfg := cursorConfig()

	m.Validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), validator.Options{Force: true}).
		Return(nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.Installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		m.Writer.EXPECT().Path(models.EditorCursor, "").Return("/x/mcp.json", nil),
		m.Writer.EXPECT().Backup("/x/mcp.json").Return("/x/mcp.json.backup.1", nil),
		m.Writer.EXPECT().Write(cfg, models.EditorCursor, "", true).Return("/x/mcp.json", nil),
	)

	res, err := w.Run(context.Background(), Args{Editor: "cursor", MCPs: "smart-reviewer", Force: true})

	require.NoError(t, err)
	assert.Equal(t, "/x/mcp.json.backup.1", res.Backup)
}

func TestRun_InstallFailureStops(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	installErr := errors.New("installer: install failed")

	m.Validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cursorConfig(), nil)
	m.Installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return(installErr)
	m.Writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := w.Run(context.Background(), Args{Editor: "cursor", MCPs: "smart-reviewer"})

	assert.ErrorIs(t, err, installErr)
}

func TestRun_SkipsInstallWhenNotGlobal(t *testing.T) {
	w, m := newWizard(t)
	m.expectDetect()
	cfg := cursorConfig()

	m.Prompter.EXPECT().SelectEditor(gomock.Any(), models.EditorCursor).Return(models.EditorCursor, nil)
	m.Prompter.EXPECT().Preferences(gomock.Any(), gomock.Any()).Return(models.Preferences{InstallGlobally: false}, nil)
	m.Validator.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.Generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(cfg, nil)
	m.Installer.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.Writer.EXPECT().Write(cfg, models.EditorCursor, "", false).Return("/x", nil)

	res, err := w.Run(context.Background(), Args{MCPs: "smart-reviewer"})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
}

func TestSplitMCPs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"a,,b,", []string{"a", "b"}},
		{"a,b,a", []string{"a", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitMCPs(tt.in), "SplitMCPs(%q)", tt.in)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "completed", StatusCompleted.String())
	assert.Equal(t, "dry-run", StatusDryRun.String())
	assert.Equal(t, "aborted", StatusAborted.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
